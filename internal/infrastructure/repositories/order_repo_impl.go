package repositories

import (
	"context"
	"errors"
	"time"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/infrastructure/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates the order header and fills in its generated ID
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.DateOrder.IsZero() {
		order.DateOrder = time.Now().UTC()
	}
	m := &models.Order{
		CustomerID:  order.CustomerID,
		DateOrder:   order.DateOrder,
		ShipCountry: order.ShipCountry,
	}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	return nil
}

// CreateDetails inserts order lines in one statement
func (r *OrderRepository) CreateDetails(ctx context.Context, details []*entities.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	ms := make([]models.OrderDetail, 0, len(details))
	for _, d := range details {
		ms = append(ms, models.OrderDetail{
			OrderID:  d.OrderID,
			GoodID:   d.GoodID,
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(&ms).Error
}

// GetByID gets an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Order{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		ShipCountry: m.ShipCountry,
		DateOrder:   m.DateOrder,
	}, nil
}

// Delete removes the order and its lines
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Order{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

// ListCustomerLines returns every order line of the customer, ordered by order then good
func (r *OrderRepository) ListCustomerLines(ctx context.Context, customerID int64) ([]*entities.OrderLine, error) {
	var rows []entities.OrderLine
	err := GetDB(ctx, r.db).
		Table("orders").
		Select("orders.id AS order_id, goods.product_name AS good_name, goods.unit_price AS unit_price, order_details.quantity AS quantity, orders.ship_country AS ship_country").
		Joins("JOIN order_details ON order_details.order_id = orders.id").
		Joins("JOIN goods ON goods.id = order_details.good_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.id, goods.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*entities.OrderLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, &rows[i])
	}
	return lines, nil
}
