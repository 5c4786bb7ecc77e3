package usecases

import (
	"context"
	"errors"
	"fmt"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/domain/repositories"
)

// AdminUsecase handles superuser account management
type AdminUsecase struct {
	userRepo repositories.UserRepository
	notifier Notifier
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository, notifier Notifier) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, notifier: notifier}
}

// PromoteSelf makes the caller a superuser
func (u *AdminUsecase) PromoteSelf(ctx context.Context, actor *entities.User) (string, error) {
	if actor.IsSuperuser {
		return "", domainerrors.AlreadyAdmin()
	}
	if err := u.userRepo.SetSuperuser(ctx, actor.ID, true); err != nil {
		return "", err
	}
	return fmt.Sprintf("User with id = %d is admin", actor.ID), nil
}

// PromoteByEmail is the operator path used by the promote-admin command
func (u *AdminUsecase) PromoteByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.TargetNotFound()
		}
		return nil, err
	}
	if user.IsSuperuser {
		return nil, domainerrors.AlreadyAdmin()
	}
	if err := u.userRepo.SetSuperuser(ctx, user.ID, true); err != nil {
		return nil, err
	}
	user.IsSuperuser = true
	return user, nil
}

// Activate re-enables an account
func (u *AdminUsecase) Activate(ctx context.Context, actor *entities.User, id int64) (string, error) {
	if err := u.setActive(ctx, actor, id, true); err != nil {
		return "", err
	}
	return fmt.Sprintf("User with id = %d was activated", id), nil
}

// Deactivate disables an account. Open sessions survive but login is refused.
func (u *AdminUsecase) Deactivate(ctx context.Context, actor *entities.User, id int64) (string, error) {
	if err := u.setActive(ctx, actor, id, false); err != nil {
		return "", err
	}
	return fmt.Sprintf("User with id = %d was deactivated", id), nil
}

func (u *AdminUsecase) setActive(ctx context.Context, actor *entities.User, id int64, active bool) error {
	if !actor.IsSuperuser {
		return domainerrors.NotAdmin()
	}

	target, err := u.lookup(ctx, id)
	if err != nil {
		return err
	}
	if target.IsActive == active {
		if active {
			return domainerrors.TargetAlreadyIn("activate")
		}
		return domainerrors.TargetAlreadyIn("deactivate")
	}

	return u.userRepo.SetActive(ctx, id, active)
}

// Delete removes an account together with its goods and orders
func (u *AdminUsecase) Delete(ctx context.Context, actor *entities.User, id int64) (string, error) {
	if !actor.IsSuperuser {
		return "", domainerrors.NotAdmin()
	}
	if actor.ID == id {
		return "", domainerrors.SelfDelete()
	}

	target, err := u.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.TargetNotFound()
		}
		return "", err
	}

	u.notifier.AccountDeleted(ctx, target)
	return fmt.Sprintf("User with id = %d was deleted", id), nil
}

func (u *AdminUsecase) lookup(ctx context.Context, id int64) (*entities.User, error) {
	target, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.TargetNotFound()
		}
		return nil, err
	}
	return target, nil
}
