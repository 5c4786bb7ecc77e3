package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/internal/interfaces/http/response"
)

type orderService interface {
	AddOrder(ctx context.Context, customer *entities.User, input *entities.AddOrderInput) (string, error)
	DeleteOrder(ctx context.Context, id int64) (string, error)
	ListMyOrders(ctx context.Context, customer *entities.User) ([]entities.OrderSummary, error)
}

// OrdersHandler handles order endpoints
type OrdersHandler struct {
	service orderService
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(service orderService) *OrdersHandler {
	return &OrdersHandler{service: service}
}

// AddOrder POST /orders/add
func (h *OrdersHandler) AddOrder(c *gin.Context) {
	customer, ok := requireUser(c)
	if !ok {
		return
	}

	var input entities.AddOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.service.AddOrder(c.Request.Context(), customer, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// DeleteOrder DELETE /orders/delete?id=
func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	id, ok := queryInt64(c, "id")
	if !ok {
		return
	}

	msg, err := h.service.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// ListMyOrders GET /orders/my_orders
func (h *OrdersHandler) ListMyOrders(c *gin.Context) {
	customer, ok := requireUser(c)
	if !ok {
		return
	}

	orders, err := h.service.ListMyOrders(c.Request.Context(), customer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}
