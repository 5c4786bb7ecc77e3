package repositories

import (
	"context"
	"errors"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/infrastructure/models"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoodRepository implements catalog data operations
type GoodRepository struct {
	db *gorm.DB
}

// NewGoodRepository creates a new good repository
func NewGoodRepository(db *gorm.DB) *GoodRepository {
	return &GoodRepository{db: db}
}

type goodViewRow struct {
	SellerName string
	GoodName   string
	Category   string
	Price      float64
}

type orderGoodRow struct {
	ID          int64
	ProductName string
	UnitPrice   float64
	SellerID    int64
	SellerName  string
	SellerEmail string
}

// Create creates a new good and fills in its generated ID
func (r *GoodRepository) Create(ctx context.Context, good *entities.Good) error {
	m := &models.Good{
		ProductName: good.Name,
		SellerID:    good.SellerID,
		CategoryID:  good.CategoryID,
		UnitPrice:   good.UnitPrice,
	}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	good.ID = m.ID
	return nil
}

// GetByID gets a good by ID
func (r *GoodRepository) GetByID(ctx context.Context, id int64) (*entities.Good, error) {
	var m models.Good
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Good{
		ID:         m.ID,
		Name:       m.ProductName,
		SellerID:   m.SellerID,
		CategoryID: m.CategoryID,
		UnitPrice:  m.UnitPrice,
	}, nil
}

// UpdatePrice sets the unit price. Unknown ids are not an error.
func (r *GoodRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return GetDB(ctx, r.db).Model(&models.Good{}).Where("id = ?", id).Update("unit_price", price).Error
}

// Delete removes the good and every order line referencing it
func (r *GoodRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("good_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Good{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

// ListBySeller returns the distinct (name, category, price) listings of a seller
func (r *GoodRepository) ListBySeller(ctx context.Context, sellerID int64) ([]entities.GoodView, error) {
	var rows []goodViewRow
	err := GetDB(ctx, r.db).
		Table("goods").
		Distinct("goods.product_name AS good_name", "categories.category_name AS category", "goods.unit_price AS price").
		Joins("JOIN categories ON categories.id = goods.category_id").
		Where("goods.seller_id = ?", sellerID).
		Order("good_name, price").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.GoodView, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.GoodView{
			Name:     row.GoodName,
			Category: entities.CategoryName(row.Category),
			Price:    row.Price,
		})
	}
	return items, nil
}

// ListBySellerWithName returns a seller's goods joined with the seller's name
func (r *GoodRepository) ListBySellerWithName(ctx context.Context, sellerID int64) ([]entities.SellerGoodView, error) {
	var rows []goodViewRow
	err := r.sellerGoodsQuery(ctx).
		Where("goods.seller_id = ?", sellerID).
		Order("goods.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSellerGoodViews(rows), nil
}

// MaxPrice probes the highest unit price, optionally within one category.
// The result is invalid when no good matches.
func (r *GoodRepository) MaxPrice(ctx context.Context, category null.String) (null.Float64, error) {
	var max null.Float64
	query := GetDB(ctx, r.db).
		Table("goods").
		Select("MAX(goods.unit_price)").
		Joins("JOIN categories ON categories.id = goods.category_id")
	if category.Valid {
		query = query.Where("categories.category_name = ?", category.String)
	}
	if err := query.Row().Scan(&max); err != nil {
		return null.Float64{}, err
	}
	return max, nil
}

// Search returns goods priced within [minPrice, maxPrice], optionally within one category
func (r *GoodRepository) Search(ctx context.Context, category null.String, minPrice, maxPrice float64) ([]entities.SellerGoodView, error) {
	query := r.sellerGoodsQuery(ctx).
		Where("goods.unit_price BETWEEN ? AND ?", minPrice, maxPrice)
	if category.Valid {
		query = query.Where("categories.category_name = ?", category.String)
	}

	var rows []goodViewRow
	if err := query.Order("goods.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSellerGoodViews(rows), nil
}

// GetForOrder resolves goods with their sellers, keyed by good ID.
// Ids that do not exist are simply absent from the map.
func (r *GoodRepository) GetForOrder(ctx context.Context, ids []int64) (map[int64]*entities.OrderGood, error) {
	result := make(map[int64]*entities.OrderGood, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []orderGoodRow
	err := GetDB(ctx, r.db).
		Table("goods").
		Select("goods.id, goods.product_name, goods.unit_price, goods.seller_id, users.username AS seller_name, users.email AS seller_email").
		Joins("JOIN users ON users.id = goods.seller_id").
		Where("goods.id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ID] = &entities.OrderGood{
			ID:          row.ID,
			Name:        row.ProductName,
			UnitPrice:   row.UnitPrice,
			SellerID:    row.SellerID,
			SellerName:  row.SellerName,
			SellerEmail: row.SellerEmail,
		}
	}
	return result, nil
}

func (r *GoodRepository) sellerGoodsQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("goods").
		Select("users.username AS seller_name, goods.product_name AS good_name, categories.category_name AS category, goods.unit_price AS price").
		Joins("JOIN categories ON categories.id = goods.category_id").
		Joins("JOIN users ON users.id = goods.seller_id")
}

func toSellerGoodViews(rows []goodViewRow) []entities.SellerGoodView {
	items := make([]entities.SellerGoodView, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.SellerGoodView{
			SellerName: row.SellerName,
			Name:       row.GoodName,
			Category:   entities.CategoryName(row.Category),
			Price:      row.Price,
		})
	}
	return items
}
