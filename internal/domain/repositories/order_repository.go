package repositories

import (
	"context"

	"e-commerce.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	CreateDetails(ctx context.Context, details []*entities.OrderDetail) error
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
	ListCustomerLines(ctx context.Context, customerID int64) ([]*entities.OrderLine, error)
}
