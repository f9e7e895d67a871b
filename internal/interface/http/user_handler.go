package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/interface/middleware"
	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/helpers"
	"github.com/alam-gir/agency/pkg/response"
	"github.com/alam-gir/agency/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,pwd"`
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

type changeEmailRequest struct {
	Password string `json:"password" binding:"required,pwd"`
	Email    string `json:"email" binding:"required,email"`
}

type changePhoneRequest struct {
	Password string `json:"password" binding:"required,pwd"`
	Phone    string `json:"phone" binding:"required,bdphone"`
}

type changeNameRequest struct {
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,personname"`
}

type changeRoleRequest struct {
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required"`
	UserID   string `json:"user_id" binding:"omitempty,uuid"`
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "profile", nil)
}

// UpdateAvatar exchanges the stored avatar for the uploaded "avatar" file.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	path, err := helpers.SaveUploadedTemp(c, "avatar")
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "file not found", nil)
		return
	}
	u, err := h.Svc.UpdateAvatar(c.Request.Context(), c.GetString(middleware.CtxUserID), path)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "avatar updated", nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ChangePassword(c.Request.Context(), c.GetString(middleware.CtxUserID), req.OldPassword, req.NewPassword); err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated", nil)
}

func (h *UserHandler) ChangeEmail(c *gin.Context) {
	var req changeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ChangeEmail(c.Request.Context(), c.GetString(middleware.CtxUserID), req.Password, req.Email)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "email updated", nil)
}

func (h *UserHandler) ChangePhone(c *gin.Context) {
	var req changePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ChangePhone(c.Request.Context(), c.GetString(middleware.CtxUserID), req.Password, req.Phone)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "phone updated", nil)
}

func (h *UserHandler) ChangeName(c *gin.Context) {
	var req changeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ChangeName(c.Request.Context(), c.GetString(middleware.CtxUserID), req.Password, req.Name)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "name updated", nil)
}

// ChangeRole reassigns a role. The route is gated to super-admin; user_id
// defaults to the acting user when omitted.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !entity.ValidRole(req.Role) {
		response.Error[any](c, http.StatusBadRequest, "invalid role", nil)
		return
	}
	actorID := c.GetString(middleware.CtxUserID)
	targetID := req.UserID
	if targetID == "" {
		targetID = actorID
	}
	u, err := h.Svc.ChangeRole(c.Request.Context(), actorID, targetID, req.Password, entity.Role(req.Role))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Sanitize(), "role updated", nil)
}
