package repositories

import (
	"context"

	"e-commerce.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetVerified(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetSuperuser(ctx context.Context, id int64, superuser bool) error
	Delete(ctx context.Context, id int64) error
}
