package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/internal/interface/middleware"
	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/helpers"
	"github.com/alam-gir/agency/pkg/response"
	"github.com/alam-gir/agency/pkg/validation"
)

type ServiceHandler struct {
	Services   repository.ServiceRepository
	Exchange   *application.AssetExchange
	Search     *application.SearchService
	IconFolder string
	Logger     *logrus.Logger
}

type createServiceRequest struct {
	Title            string  `json:"title" form:"title" binding:"required,min=2,max=150"`
	Description      string  `json:"description" form:"description" binding:"required"`
	ShortDescription string  `json:"short_description" form:"short_description" binding:"required,max=300"`
	PackageID        *string `json:"package_id" form:"package_id" binding:"omitempty,uuid"`
	CategoryID       *string `json:"category_id" form:"category_id" binding:"omitempty,uuid"`
}

type updateServiceRequest struct {
	Title            *string `json:"title" binding:"omitempty,min=2,max=150"`
	Description      *string `json:"description" binding:"omitempty"`
	ShortDescription *string `json:"short_description" binding:"omitempty,max=300"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive"`
	CategoryID       *string `json:"category_id" binding:"omitempty,uuid"`
	PackageID        *string `json:"package_id" binding:"omitempty,uuid"`
}

// Create takes a multipart form: the service fields plus an optional
// "icon" file. The new service is mirrored into the search index.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	s := &entity.Service{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Status:           entity.StatusInactive,
		PackageID:        req.PackageID,
		CategoryID:       req.CategoryID,
		AuthorID:         c.GetString(middleware.CtxUserID),
	}
	if err := h.Services.Create(c.Request.Context(), s); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	if path, err := helpers.SaveUploadedTemp(c, "icon"); err == nil {
		a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, nil)
		if err != nil {
			apierror.Respond(c, err)
			return
		}
		if err := h.Services.SetIcon(c.Request.Context(), s.ID, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "service not found"))
			return
		}
		s, err = h.Services.GetByID(c.Request.Context(), s.ID)
		if err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "service not found"))
			return
		}
	}
	h.Search.IndexService(c.Request.Context(), s)
	response.Success(c, http.StatusCreated, s, "service created", nil)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.Services.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, services, "services", nil)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.Services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	response.Success(c, http.StatusOK, s, "service", nil)
}

// Update applies a partial update; absent fields are left untouched.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	upd := repository.ServiceUpdate{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		CategoryID:       req.CategoryID,
		PackageID:        req.PackageID,
	}
	if req.Status != nil {
		st := entity.Status(*req.Status)
		upd.Status = &st
	}
	id := c.Param("id")
	if err := h.Services.Update(c.Request.Context(), id, upd); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	s, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	h.Search.IndexService(c.Request.Context(), s)
	response.Success(c, http.StatusOK, s, "service updated", nil)
}

// UpdateIcon exchanges the service icon for the uploaded "icon" file.
func (h *ServiceHandler) UpdateIcon(c *gin.Context) {
	id := c.Param("id")
	s, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	path, err := helpers.SaveUploadedTemp(c, "icon")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "icon file is required", nil)
		return
	}
	a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, s.Icon)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if s.IconID == nil {
		if err := h.Services.SetIcon(c.Request.Context(), id, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "service not found"))
			return
		}
	}
	s, err = h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "service not found"))
		return
	}
	response.Success(c, http.StatusOK, s, "service icon updated", nil)
}

// SearchServices queries the Elasticsearch mirror of the catalog.
func (h *ServiceHandler) SearchServices(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Search.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("service search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
