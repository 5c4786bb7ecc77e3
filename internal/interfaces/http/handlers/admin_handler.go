package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/internal/interfaces/http/response"
)

type adminService interface {
	PromoteSelf(ctx context.Context, actor *entities.User) (string, error)
	Activate(ctx context.Context, actor *entities.User, id int64) (string, error)
	Deactivate(ctx context.Context, actor *entities.User, id int64) (string, error)
	Delete(ctx context.Context, actor *entities.User, id int64) (string, error)
}

// AdminHandler handles superuser account control
type AdminHandler struct {
	service adminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service adminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// PromoteSelf makes the caller a superuser
// PATCH /control/admin
func (h *AdminHandler) PromoteSelf(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	msg, err := h.service.PromoteSelf(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// Activate PATCH /control/activate?id=
func (h *AdminHandler) Activate(c *gin.Context) {
	h.onTarget(c, h.service.Activate)
}

// Deactivate PATCH /control/deactivate?id=
func (h *AdminHandler) Deactivate(c *gin.Context) {
	h.onTarget(c, h.service.Deactivate)
}

// Delete DELETE /control/delete?id=
func (h *AdminHandler) Delete(c *gin.Context) {
	h.onTarget(c, h.service.Delete)
}

func (h *AdminHandler) onTarget(c *gin.Context, action func(context.Context, *entities.User, int64) (string, error)) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := queryInt64(c, "id")
	if !ok {
		return
	}

	msg, err := action(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}
