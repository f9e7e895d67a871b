package handlers

import (
	"net/http"

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

type CategoryHandler struct {
	Categories repository.CategoryRepository
	Exchange   *application.AssetExchange
	IconFolder string
	Logger     *logrus.Logger
}

type categoryTitleRequest struct {
	Title string `json:"title" form:"title" binding:"required,min=2,max=100"`
}

// Create takes a multipart form: title plus an optional "icon" file.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryTitleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat := &entity.Category{Title: req.Title, AuthorID: c.GetString(middleware.CtxUserID)}
	if err := h.Categories.Create(c.Request.Context(), cat); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	if path, err := helpers.SaveUploadedTemp(c, "icon"); err == nil {
		a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, nil)
		if err != nil {
			apierror.Respond(c, err)
			return
		}
		if err := h.Categories.SetIcon(c.Request.Context(), cat.ID, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "category not found"))
			return
		}
		cat, err = h.Categories.GetByID(c.Request.Context(), cat.ID)
		if err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "category not found"))
			return
		}
	}
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.Categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	response.Success(c, http.StatusOK, cat, "category", nil)
}

func (h *CategoryHandler) UpdateTitle(c *gin.Context) {
	var req categoryTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id := c.Param("id")
	if err := h.Categories.UpdateTitle(c.Request.Context(), id, req.Title); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	cat, err := h.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	response.Success(c, http.StatusOK, cat, "category updated", nil)
}

// UpdateIcon exchanges the category icon for the uploaded "icon" file.
func (h *CategoryHandler) UpdateIcon(c *gin.Context) {
	id := c.Param("id")
	cat, err := h.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	path, err := helpers.SaveUploadedTemp(c, "icon")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "icon file is required", nil)
		return
	}
	a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, cat.Icon)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if cat.IconID == nil {
		if err := h.Categories.SetIcon(c.Request.Context(), id, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "category not found"))
			return
		}
	}
	cat, err = h.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "category not found"))
		return
	}
	response.Success(c, http.StatusOK, cat, "category icon updated", nil)
}
