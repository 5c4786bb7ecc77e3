package repositories

import (
	"context"
	"errors"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/infrastructure/models"
	"gorm.io/gorm"
)

var defaultCategoryDescriptions = map[entities.CategoryName]string{
	entities.CategoryBeverages:   "Soft drinks, coffees, teas, beers, and ales",
	entities.CategoryConfections: "Desserts, candies, and sweet breads",
	entities.CategoryCars:        "Cars, parts and accessories",
	entities.CategoryGames:       "Video, board and card games",
}

// CategoryRepository implements category lookups
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByName gets a category by its name
func (r *CategoryRepository) GetByName(ctx context.Context, name entities.CategoryName) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).Where("category_name = ?", string(name)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCategoryEntity(&m), nil
}

// List returns all categories ordered by ID
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var ms []models.Category
	if err := GetDB(ctx, r.db).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	categories := make([]*entities.Category, 0, len(ms))
	for i := range ms {
		categories = append(categories, toCategoryEntity(&ms[i]))
	}
	return categories, nil
}

// EnsureDefaults seeds the fixed categories that are missing
func (r *CategoryRepository) EnsureDefaults(ctx context.Context) error {
	for _, name := range entities.AllCategories {
		m := models.Category{CategoryName: string(name), Description: defaultCategoryDescriptions[name]}
		err := GetDB(ctx, r.db).
			Where(models.Category{CategoryName: string(name)}).
			Attrs(models.Category{Description: m.Description}).
			FirstOrCreate(&m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func toCategoryEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:          m.ID,
		Name:        entities.CategoryName(m.CategoryName),
		Description: m.Description,
	}
}
