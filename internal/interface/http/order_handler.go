package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/response"
	"github.com/alam-gir/agency/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Orders repository.OrderRepository
	Logger *logrus.Logger
}

type placeOrderRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required,personname"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone" binding:"required,bdphone"`
	Note          string  `json:"note" binding:"omitempty,max=1000"`
	PackageID     *string `json:"package_id" binding:"omitempty,uuid"`
	ServiceID     *string `json:"service_id" binding:"omitempty,uuid"`
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Place is a public endpoint; the order must reference a package or a
// service (or both).
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.PackageID == nil && req.ServiceID == nil {
		response.Error[any](c, http.StatusBadRequest, "order must reference a package or a service", nil)
		return
	}
	o, err := h.Svc.Place(c.Request.Context(), application.PlaceOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Note:          req.Note,
		PackageID:     req.PackageID,
		ServiceID:     req.ServiceID,
	})
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusCreated, o, "order placed", nil)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, apierror.FromRepository(err, "order not found"))
		return
	}
	response.Success(c, http.StatusOK, o, "order", nil)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !entity.ValidOrderStatus(req.Status) {
		response.Error[any](c, http.StatusBadRequest, "invalid order status", nil)
		return
	}
	o, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, o, "order status updated", nil)
}
