package usecases_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/usecases"
)

type catalogFixture struct {
	uc         *usecases.CatalogUsecase
	goods      *MockGoodRepository
	categories *MockCategoryRepository
	uow        *MockUnitOfWork
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		goods:      new(MockGoodRepository),
		categories: new(MockCategoryRepository),
		uow:        new(MockUnitOfWork),
	}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.uc = usecases.NewCatalogUsecase(f.goods, f.categories, f.uow)
	return f
}

func price(v float64) *float64 { return &v }

func TestCatalogUsecase_AddGood_Guards(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	in := &entities.AddGoodInput{Name: "rx8", Category: entities.CategoryCars, Price: price(20)}

	_, err := f.uc.AddGood(ctx, &entities.User{ID: 1, Role: entities.UserRoleCustomer, IsVerified: true}, in)
	appErr := requireStatus(t, err, domainerrors.StatusNotSeller)
	assert.Equal(t, "Operations with goods only for sellers!", appErr.Message)

	_, err = f.uc.AddGood(ctx, &entities.User{ID: 1, Role: entities.UserRoleSeller}, in)
	appErr = requireStatus(t, err, domainerrors.StatusSellerNotVerified)
	assert.Equal(t, "Seller is not verified!", appErr.Message)

	_, err = f.uc.AddGood(ctx, &entities.User{ID: 1, Role: entities.UserRoleSeller, IsVerified: true},
		&entities.AddGoodInput{Name: "rx8", Category: entities.CategoryCars, Price: price(-1)})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestCatalogUsecase_AddGood(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	seller := &entities.User{ID: 4, Role: entities.UserRoleSeller, IsVerified: true}

	f.categories.On("GetByName", ctx, entities.CategoryCars).Return(&entities.Category{ID: 3, Name: entities.CategoryCars}, nil)
	f.goods.On("Create", ctx, &entities.Good{Name: "rx8", SellerID: 4, CategoryID: 3, UnitPrice: 20}).Return(nil).Once()

	msg, err := f.uc.AddGood(ctx, seller, &entities.AddGoodInput{Name: "rx8", Category: entities.CategoryCars, Price: price(20)})
	require.NoError(t, err)
	assert.Equal(t, "Good rx8 was added", msg)

	f.categories.On("GetByName", ctx, entities.CategoryName("toys")).Return(nil, domainerrors.ErrNotFound)
	_, err = f.uc.AddGood(ctx, seller, &entities.AddGoodInput{Name: "ball", Category: "toys", Price: price(1)})
	appErr := requireStatus(t, err, domainerrors.StatusGoodsInternal)
	assert.Equal(t, "Category toys is not exists", appErr.Message)

	f.goods.On("Create", ctx, mock.Anything).Return(errors.New("constraint failed")).Once()
	_, err = f.uc.AddGood(ctx, seller, &entities.AddGoodInput{Name: "rx7", Category: entities.CategoryCars, Price: price(1)})
	appErr = requireStatus(t, err, domainerrors.StatusGoodsInternal)
	assert.Equal(t, "internal server error", appErr.Message)
}

func TestCatalogUsecase_Listings(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.goods.On("ListBySeller", ctx, int64(4)).Return([]entities.GoodView{}, nil).Once()
	mine, err := f.uc.ListMyGoods(ctx, &entities.User{ID: 4})
	require.NoError(t, err)
	assert.False(t, mine.Found)
	assert.Equal(t, "Nothing", mine.Message)
	assert.Empty(t, mine.Items)

	f.goods.On("ListBySeller", ctx, int64(4)).Return([]entities.GoodView{{Name: "rx8", Category: entities.CategoryCars, Price: 20}}, nil).Once()
	mine, err = f.uc.ListMyGoods(ctx, &entities.User{ID: 4})
	require.NoError(t, err)
	assert.True(t, mine.Found)
	assert.Equal(t, 1, mine.Count)

	f.goods.On("ListBySellerWithName", ctx, int64(9)).Return(nil, nil).Once()
	theirs, err := f.uc.ListBySeller(ctx, 9)
	require.NoError(t, err)
	assert.False(t, theirs.Found)
	assert.Equal(t, "This seller without goods!", theirs.Message)

	dbErr := errors.New("db down")
	f.goods.On("ListBySellerWithName", ctx, int64(9)).Return(nil, dbErr).Once()
	_, err = f.uc.ListBySeller(ctx, 9)
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogUsecase_Search(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	cars := null.StringFrom("cars")
	found := []entities.SellerGoodView{{SellerName: "s", Name: "rx8", Category: entities.CategoryCars, Price: 20}}

	// explicit bound, zero honored
	f.goods.On("Search", ctx, cars, 0.0, 0.0).Return([]entities.SellerGoodView{}, nil).Once()
	res, err := f.uc.Search(ctx, entities.GoodSearch{Category: cars, MaxPrice: null.Float64From(0)})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "Goods to params are not found", res.Message)
	f.goods.AssertNotCalled(t, "MaxPrice", mock.Anything, mock.Anything)

	// implicit bound probes the maximum
	f.goods.On("MaxPrice", ctx, cars).Return(null.Float64From(32.5), nil).Once()
	f.goods.On("Search", ctx, cars, 10.0, 32.5).Return(found, nil).Once()
	res, err = f.uc.Search(ctx, entities.GoodSearch{Category: cars, MinPrice: 10})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, found, res.Items)

	// empty catalog
	f.goods.On("MaxPrice", ctx, null.String{}).Return(null.Float64{}, nil).Once()
	res, err = f.uc.Search(ctx, entities.GoodSearch{})
	require.NoError(t, err)
	assert.False(t, res.Found)

	f.goods.On("MaxPrice", ctx, null.String{}).Return(null.Float64{}, errors.New("boom")).Once()
	_, err = f.uc.Search(ctx, entities.GoodSearch{})
	appErr := requireStatus(t, err, domainerrors.StatusGoodsNotExist)
	assert.Equal(t, "Goods are not exists", appErr.Message)
}

func TestCatalogUsecase_ChangePrice(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.goods.On("UpdatePrice", ctx, int64(3), 23.7).Return(nil).Once()
	msg, err := f.uc.ChangePrice(ctx, 3, 23.7)
	require.NoError(t, err)
	assert.Equal(t, "Price of good #3 was changed", msg)

	_, err = f.uc.ChangePrice(ctx, 3, -1)
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestCatalogUsecase_RejectsNonFinitePrices(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	seller := &entities.User{ID: 4, Role: entities.UserRoleSeller, IsVerified: true}

	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := f.uc.ChangePrice(ctx, 3, p)
		requireStatus(t, err, http.StatusUnprocessableEntity)

		_, err = f.uc.AddGood(ctx, seller, &entities.AddGoodInput{Name: "rx8", Category: entities.CategoryCars, Price: price(p)})
		requireStatus(t, err, http.StatusUnprocessableEntity)
	}
	f.goods.AssertNotCalled(t, "UpdatePrice", mock.Anything, mock.Anything, mock.Anything)
	f.goods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.categories.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_DeleteGood(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.goods.On("GetByID", ctx, int64(404)).Return(nil, domainerrors.ErrNotFound)
	_, err := f.uc.DeleteGood(ctx, 404)
	appErr := requireStatus(t, err, domainerrors.StatusGoodNotFound)
	assert.Equal(t, "Good with id 404 not found", appErr.Message)
	f.goods.AssertNotCalled(t, "Delete", mock.Anything, int64(404))

	f.goods.On("GetByID", ctx, int64(3)).Return(&entities.Good{ID: 3, Name: "rx8"}, nil)
	f.goods.On("Delete", ctx, int64(3)).Return(nil).Once()
	msg, err := f.uc.DeleteGood(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Good 'rx8' was deleted with market", msg)
	f.uow.AssertNumberOfCalls(t, "Do", 2)
}
