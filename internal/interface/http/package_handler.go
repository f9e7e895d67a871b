package handlers

import (
	"context"
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

type PackageHandler struct {
	Packages   repository.PackageRepository
	Exchange   *application.AssetExchange
	IconFolder string
	Logger     *logrus.Logger
}

type createPackageRequest struct {
	Title        string   `json:"title" form:"title" binding:"required,min=2,max=150"`
	Description  string   `json:"description" form:"description" binding:"required"`
	PriceBDT     float64  `json:"price_bdt" form:"price_bdt" binding:"required,gt=0"`
	PriceUSD     float64  `json:"price_usd" form:"price_usd" binding:"required,gt=0"`
	DeliveryTime string   `json:"delivery_time" form:"delivery_time" binding:"required"`
	RevisionTime int      `json:"revision_time" form:"revision_time" binding:"required,gte=0"`
	Features     []string `json:"features" form:"features" binding:"required,min=1"`
	CategoryID   string   `json:"category_id" form:"category_id" binding:"required,uuid"`
}

type packagePriceRequest struct {
	PriceBDT float64 `json:"price_bdt" binding:"required,gt=0"`
	PriceUSD float64 `json:"price_usd" binding:"required,gt=0"`
}

type packageDeliveryRequest struct {
	DeliveryTime string `json:"delivery_time" binding:"required"`
}

type packageRevisionRequest struct {
	RevisionTime int `json:"revision_time" binding:"required,gte=0"`
}

type packageFeaturesRequest struct {
	Features []string `json:"features" binding:"required,min=1"`
}

// Create takes a multipart form: the package fields (features may repeat)
// plus an optional "icon" file.
func (h *PackageHandler) Create(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p := &entity.Package{
		Title:        req.Title,
		Description:  req.Description,
		PriceBDT:     req.PriceBDT,
		PriceUSD:     req.PriceUSD,
		DeliveryTime: req.DeliveryTime,
		RevisionTime: req.RevisionTime,
		Features:     req.Features,
		Status:       entity.StatusInactive,
		CategoryID:   req.CategoryID,
		AuthorID:     c.GetString(middleware.CtxUserID),
	}
	if err := h.Packages.Create(c.Request.Context(), p); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	if path, err := helpers.SaveUploadedTemp(c, "icon"); err == nil {
		a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, nil)
		if err != nil {
			apierror.Respond(c, err)
			return
		}
		if err := h.Packages.SetIcon(c.Request.Context(), p.ID, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "package not found"))
			return
		}
		p, err = h.Packages.GetByID(c.Request.Context(), p.ID)
		if err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "package not found"))
			return
		}
	}
	response.Success(c, http.StatusCreated, p, "package created", nil)
}

func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.Packages.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, pkgs, "packages", nil)
}

func (h *PackageHandler) Get(c *gin.Context) {
	p, err := h.Packages.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	response.Success(c, http.StatusOK, p, "package", nil)
}

func (h *PackageHandler) UpdateTitle(c *gin.Context) {
	var req projectTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateTitle(ctx, id, req.Title)
	}, "package updated")
}

func (h *PackageHandler) UpdateDescription(c *gin.Context) {
	var req projectDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateDescription(ctx, id, req.Description)
	}, "package updated")
}

func (h *PackageHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateStatus(ctx, id, entity.Status(req.Status))
	}, "package status updated")
}

func (h *PackageHandler) UpdateCategory(c *gin.Context) {
	var req categoryRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateCategory(ctx, id, req.CategoryID)
	}, "package category updated")
}

func (h *PackageHandler) UpdatePrice(c *gin.Context) {
	var req packagePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdatePrice(ctx, id, req.PriceBDT, req.PriceUSD)
	}, "package price updated")
}

func (h *PackageHandler) UpdateDeliveryTime(c *gin.Context) {
	var req packageDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateDeliveryTime(ctx, id, req.DeliveryTime)
	}, "package delivery time updated")
}

func (h *PackageHandler) UpdateRevisionTime(c *gin.Context) {
	var req packageRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateRevisionTime(ctx, id, req.RevisionTime)
	}, "package revision time updated")
}

func (h *PackageHandler) UpdateFeatures(c *gin.Context) {
	var req packageFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func(ctx context.Context, id string) error {
		return h.Packages.UpdateFeatures(ctx, id, req.Features)
	}, "package features updated")
}

// UpdateIcon exchanges the package icon for the uploaded "icon" file.
func (h *PackageHandler) UpdateIcon(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Packages.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	path, err := helpers.SaveUploadedTemp(c, "icon")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "icon file is required", nil)
		return
	}
	a, err := h.Exchange.Replace(c.Request.Context(), path, h.IconFolder, p.Icon)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if p.IconID == nil {
		if err := h.Packages.SetIcon(c.Request.Context(), id, a.ID); err != nil {
			apierror.Respond(c, apierror.FromRepository(err, "package not found"))
			return
		}
	}
	p, err = h.Packages.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	response.Success(c, http.StatusOK, p, "package icon updated", nil)
}

func (h *PackageHandler) patch(c *gin.Context, mutate func(ctx context.Context, id string) error, msg string) {
	id := c.Param("id")
	if err := mutate(c.Request.Context(), id); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	p, err := h.Packages.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "package not found"))
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}
