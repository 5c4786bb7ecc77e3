package repositories

import (
	"context"

	"e-commerce.backend/internal/domain/entities"
	"github.com/volatiletech/null/v8"
)

// GoodRepository defines catalog data operations
type GoodRepository interface {
	Create(ctx context.Context, good *entities.Good) error
	GetByID(ctx context.Context, id int64) (*entities.Good, error)
	UpdatePrice(ctx context.Context, id int64, price float64) error
	Delete(ctx context.Context, id int64) error
	ListBySeller(ctx context.Context, sellerID int64) ([]entities.GoodView, error)
	ListBySellerWithName(ctx context.Context, sellerID int64) ([]entities.SellerGoodView, error)
	MaxPrice(ctx context.Context, category null.String) (null.Float64, error)
	Search(ctx context.Context, category null.String, minPrice, maxPrice float64) ([]entities.SellerGoodView, error)
	GetForOrder(ctx context.Context, ids []int64) (map[int64]*entities.OrderGood, error)
}

// CategoryRepository defines category lookups
type CategoryRepository interface {
	GetByName(ctx context.Context, name entities.CategoryName) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
	EnsureDefaults(ctx context.Context) error
}
