package repositories

import (
	"context"
	"errors"
	"time"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/infrastructure/models"
	"gorm.io/gorm"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user and fills in its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.RegistryAt.IsZero() {
		user.RegistryAt = time.Now().UTC()
	}
	m := &models.User{
		Username:       user.Username,
		Email:          user.Email,
		Role:           string(user.Role),
		HashedPassword: user.PasswordHash,
		IsActive:       user.IsActive,
		IsSuperuser:    user.IsSuperuser,
		IsVerified:     user.IsVerified,
		RegistryAt:     user.RegistryAt,
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.updateColumn(ctx, id, "hashed_password", passwordHash)
}

// SetVerified marks the user's email as verified
func (r *UserRepository) SetVerified(ctx context.Context, id int64) error {
	return r.updateColumn(ctx, id, "is_verified", true)
}

// SetActive toggles whether the user may log in
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.updateColumn(ctx, id, "is_active", active)
}

// SetSuperuser grants or revokes administration rights
func (r *UserRepository) SetSuperuser(ctx context.Context, id int64, superuser bool) error {
	return r.updateColumn(ctx, id, "is_superuser", superuser)
}

// Delete removes the user together with their goods, orders and the order lines touching either
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		ownOrders := tx.Model(&models.Order{}).Select("id").Where("customer_id = ?", id)
		ownGoods := tx.Model(&models.Good{}).Select("id").Where("seller_id = ?", id)

		if err := tx.Where("order_id IN (?) OR good_id IN (?)", ownOrders, ownGoods).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seller_id = ?", id).Delete(&models.Good{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Role:         entities.UserRole(m.Role),
		PasswordHash: m.HashedPassword,
		IsActive:     m.IsActive,
		IsSuperuser:  m.IsSuperuser,
		IsVerified:   m.IsVerified,
		RegistryAt:   m.RegistryAt,
	}
}
