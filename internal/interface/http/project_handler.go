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

type ProjectHandler struct {
	Projects    repository.ProjectRepository
	Assets      repository.AssetRepository
	Exchange    *application.AssetExchange
	ImageFolder string
	FileFolder  string
	Logger      *logrus.Logger
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
}

type projectTitleRequest struct {
	Title string `json:"title" binding:"required,min=2,max=150"`
}

type projectDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type categoryRefRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p := &entity.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.StatusInactive,
		CategoryID:  req.CategoryID,
		AuthorID:    c.GetString(middleware.CtxUserID),
	}
	if err := h.Projects.Create(c.Request.Context(), p); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	p.Images = []entity.Asset{}
	p.Files = []entity.Asset{}
	response.Success(c, http.StatusCreated, p, "project created", nil)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Projects.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects, "projects", nil)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	response.Success(c, http.StatusOK, p, "project", nil)
}

func (h *ProjectHandler) UpdateTitle(c *gin.Context) {
	var req projectTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func() error {
		return h.Projects.UpdateTitle(c.Request.Context(), c.Param("id"), req.Title)
	}, "project updated")
}

func (h *ProjectHandler) UpdateDescription(c *gin.Context) {
	var req projectDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func() error {
		return h.Projects.UpdateDescription(c.Request.Context(), c.Param("id"), req.Description)
	}, "project updated")
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func() error {
		return h.Projects.UpdateStatus(c.Request.Context(), c.Param("id"), entity.Status(req.Status))
	}, "project status updated")
}

func (h *ProjectHandler) UpdateCategory(c *gin.Context) {
	var req categoryRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.patch(c, func() error {
		return h.Projects.UpdateCategory(c.Request.Context(), c.Param("id"), req.CategoryID)
	}, "project category updated")
}

// patch runs the mutation and answers with the refreshed project.
func (h *ProjectHandler) patch(c *gin.Context, mutate func() error, msg string) {
	if err := mutate(); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	p, err := h.Projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}

// Delete removes the project and discards every attached image and file,
// remote objects included.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Projects.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	if err := h.Projects.Delete(c.Request.Context(), id); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	for _, a := range append(p.Images, p.Files...) {
		a := a
		if err := h.Exchange.Discard(c.Request.Context(), &a); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("asset_id", a.ID).Warn("asset discard failed during project delete")
		}
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "project deleted", nil)
}

// AddImage uploads the "image" file and appends it to the showcase.
func (h *ProjectHandler) AddImage(c *gin.Context) {
	h.addAsset(c, "image", h.ImageFolder, h.Projects.AddImage, "project image added")
}

func (h *ProjectHandler) RemoveImage(c *gin.Context) {
	h.removeAsset(c, h.Projects.RemoveImage, "project image removed")
}

// AddFile uploads the "file" file and appends it to the downloads.
func (h *ProjectHandler) AddFile(c *gin.Context) {
	h.addAsset(c, "file", h.FileFolder, h.Projects.AddFile, "project file added")
}

func (h *ProjectHandler) RemoveFile(c *gin.Context) {
	h.removeAsset(c, h.Projects.RemoveFile, "project file removed")
}

func (h *ProjectHandler) addAsset(c *gin.Context, field, folder string, attach func(ctx context.Context, projectID, assetID string) error, msg string) {
	id := c.Param("id")
	if _, err := h.Projects.GetByID(c.Request.Context(), id); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	path, err := helpers.SaveUploadedTemp(c, field)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, field+" file is required", nil)
		return
	}
	a, err := h.Exchange.Replace(c.Request.Context(), path, folder, nil)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	if err := attach(c.Request.Context(), id, a.ID); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	p, err := h.Projects.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}

func (h *ProjectHandler) removeAsset(c *gin.Context, detach func(ctx context.Context, projectID, assetID string) error, msg string) {
	id := c.Param("id")
	assetID := c.Param("assetID")
	a, err := h.Assets.GetByID(c.Request.Context(), assetID)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "asset not found"))
		return
	}
	if err := detach(c.Request.Context(), id, assetID); err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "asset not found on this project"))
		return
	}
	if err := h.Exchange.Discard(c.Request.Context(), a); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("asset_id", a.ID).Warn("asset discard failed")
	}
	p, err := h.Projects.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "project not found"))
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}
