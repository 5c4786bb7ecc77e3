package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/internal/interfaces/http/response"
)

type catalogService interface {
	AddGood(ctx context.Context, seller *entities.User, input *entities.AddGoodInput) (string, error)
	ListMyGoods(ctx context.Context, seller *entities.User) (entities.ListResult[entities.GoodView], error)
	ListBySeller(ctx context.Context, sellerID int64) (entities.ListResult[entities.SellerGoodView], error)
	Search(ctx context.Context, search entities.GoodSearch) (entities.ListResult[entities.SellerGoodView], error)
	ChangePrice(ctx context.Context, id int64, price float64) (string, error)
	DeleteGood(ctx context.Context, id int64) (string, error)
}

// GoodsHandler handles catalog endpoints
type GoodsHandler struct {
	service catalogService
}

// NewGoodsHandler creates a new goods handler
func NewGoodsHandler(service catalogService) *GoodsHandler {
	return &GoodsHandler{service: service}
}

// AddGood POST /goods/add
func (h *GoodsHandler) AddGood(c *gin.Context) {
	seller, ok := requireUser(c)
	if !ok {
		return
	}

	var input entities.AddGoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.service.AddGood(c.Request.Context(), seller, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// ListMyGoods GET /goods/my_goods
func (h *GoodsHandler) ListMyGoods(c *gin.Context) {
	seller, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.service.ListMyGoods(c.Request.Context(), seller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListBySeller GET /goods/seller/:id
func (h *GoodsHandler) ListBySeller(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	result, err := h.service.ListBySeller(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Search GET /goods/search?category=&min_price=&max_price=
func (h *GoodsHandler) Search(c *gin.Context) {
	search := entities.GoodSearch{}

	if raw := c.Query("category"); raw != "" {
		if !isCategory(raw) {
			response.InvalidField(c, "category", "value is not a valid enumeration member; permitted: beverages confections cars games")
			return
		}
		search.Category = null.StringFrom(raw)
	}

	minPrice, ok := queryFloat(c, "min_price")
	if !ok {
		return
	}
	search.MinPrice = minPrice.Float64

	if search.MaxPrice, ok = queryFloat(c, "max_price"); !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ChangePrice PATCH /goods/change_price?id=&price=
func (h *GoodsHandler) ChangePrice(c *gin.Context) {
	id, ok := queryInt64(c, "id")
	if !ok {
		return
	}
	price, ok := queryFloat(c, "price")
	if !ok {
		return
	}
	if !price.Valid {
		response.InvalidField(c, "price", msgRequired)
		return
	}
	if price.Float64 < 0 {
		response.InvalidField(c, "price", "ensure this value is greater than or equal to 0")
		return
	}

	msg, err := h.service.ChangePrice(c.Request.Context(), id, price.Float64)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// DeleteGood DELETE /goods/delete?good_id=
func (h *GoodsHandler) DeleteGood(c *gin.Context) {
	id, ok := queryInt64(c, "good_id")
	if !ok {
		return
	}

	msg, err := h.service.DeleteGood(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

func isCategory(name string) bool {
	for _, category := range entities.AllCategories {
		if string(category) == name {
			return true
		}
	}
	return false
}
