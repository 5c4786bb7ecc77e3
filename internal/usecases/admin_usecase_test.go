package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/usecases"
)

var admin = &entities.User{ID: 1, IsActive: true, IsSuperuser: true}

func TestAdminUsecase_PromoteSelf(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecases.NewAdminUsecase(users, new(MockNotifier))
	ctx := context.Background()

	_, err := uc.PromoteSelf(ctx, admin)
	appErr := requireStatus(t, err, domainerrors.StatusNotAdmin)
	assert.Equal(t, "User is already admin", appErr.Message)

	users.On("SetSuperuser", ctx, int64(9), true).Return(nil).Once()
	msg, err := uc.PromoteSelf(ctx, &entities.User{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, "User with id = 9 is admin", msg)
}

func TestAdminUsecase_PromoteByEmail(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecases.NewAdminUsecase(users, new(MockNotifier))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@gmail.com").Return(nil, domainerrors.ErrNotFound)
	_, err := uc.PromoteByEmail(ctx, "ghost@gmail.com")
	requireStatus(t, err, domainerrors.StatusTargetNotFound)

	users.On("GetByEmail", ctx, "boss@gmail.com").Return(&entities.User{ID: 4, IsSuperuser: true}, nil).Once()
	_, err = uc.PromoteByEmail(ctx, "boss@gmail.com")
	requireStatus(t, err, domainerrors.StatusNotAdmin)

	users.On("GetByEmail", ctx, "boss@gmail.com").Return(&entities.User{ID: 4}, nil).Once()
	users.On("SetSuperuser", ctx, int64(4), true).Return(nil).Once()
	user, err := uc.PromoteByEmail(ctx, "boss@gmail.com")
	require.NoError(t, err)
	assert.True(t, user.IsSuperuser)
}

func TestAdminUsecase_ActivateDeactivate(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecases.NewAdminUsecase(users, new(MockNotifier))
	ctx := context.Background()

	_, err := uc.Activate(ctx, &entities.User{ID: 2, IsActive: true}, 3)
	appErr := requireStatus(t, err, domainerrors.StatusNotAdmin)
	assert.Equal(t, "User is not admin", appErr.Message)

	users.On("GetByID", ctx, int64(404)).Return(nil, domainerrors.ErrNotFound)
	_, err = uc.Deactivate(ctx, admin, 404)
	appErr = requireStatus(t, err, domainerrors.StatusTargetNotFound)
	assert.Equal(t, "User is not found", appErr.Message)

	users.On("GetByID", ctx, int64(3)).Return(&entities.User{ID: 3, IsActive: false}, nil)
	_, err = uc.Deactivate(ctx, admin, 3)
	appErr = requireStatus(t, err, domainerrors.StatusTargetState)
	assert.Equal(t, "User is already deactivate", appErr.Message)

	users.On("SetActive", ctx, int64(3), true).Return(nil).Once()
	msg, err := uc.Activate(ctx, admin, 3)
	require.NoError(t, err)
	assert.Equal(t, "User with id = 3 was activated", msg)

	users.On("GetByID", ctx, int64(5)).Return(&entities.User{ID: 5, IsActive: true}, nil)
	_, err = uc.Activate(ctx, admin, 5)
	appErr = requireStatus(t, err, domainerrors.StatusTargetState)
	assert.Equal(t, "User is already activate", appErr.Message)

	users.On("SetActive", ctx, int64(5), false).Return(nil).Once()
	msg, err = uc.Deactivate(ctx, admin, 5)
	require.NoError(t, err)
	assert.Equal(t, "User with id = 5 was deactivated", msg)
}

func TestAdminUsecase_Delete(t *testing.T) {
	users := new(MockUserRepository)
	notifier := new(MockNotifier)
	uc := usecases.NewAdminUsecase(users, notifier)
	ctx := context.Background()

	_, err := uc.Delete(ctx, &entities.User{ID: 2}, 3)
	requireStatus(t, err, domainerrors.StatusNotAdmin)

	// self delete is refused before the target is even looked up
	_, err = uc.Delete(ctx, admin, admin.ID)
	appErr := requireStatus(t, err, domainerrors.StatusTargetState)
	assert.Equal(t, "U dont delete yourself", appErr.Message)
	users.AssertNotCalled(t, "GetByID", ctx, admin.ID)

	users.On("GetByID", ctx, int64(404)).Return(nil, domainerrors.ErrNotFound)
	_, err = uc.Delete(ctx, admin, 404)
	requireStatus(t, err, domainerrors.StatusTargetNotFound)

	target := &entities.User{ID: 3, Email: "bye@gmail.com", Username: "bye"}
	users.On("GetByID", ctx, int64(3)).Return(target, nil)
	users.On("Delete", ctx, int64(3)).Return(nil).Once()
	notifier.On("AccountDeleted", ctx, target).Once()

	msg, err := uc.Delete(ctx, admin, 3)
	require.NoError(t, err)
	assert.Equal(t, "User with id = 3 was deleted", msg)
	notifier.AssertExpectations(t)

	dbErr := errors.New("db down")
	users.On("Delete", ctx, int64(3)).Return(dbErr).Once()
	_, err = uc.Delete(ctx, admin, 3)
	assert.ErrorIs(t, err, dbErr)
}
