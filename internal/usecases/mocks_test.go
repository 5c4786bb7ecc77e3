package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"e-commerce.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) SetSuperuser(ctx context.Context, id int64, superuser bool) error {
	args := m.Called(ctx, id, superuser)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock GoodRepository
type MockGoodRepository struct {
	mock.Mock
}

func (m *MockGoodRepository) Create(ctx context.Context, good *entities.Good) error {
	args := m.Called(ctx, good)
	return args.Error(0)
}

func (m *MockGoodRepository) GetByID(ctx context.Context, id int64) (*entities.Good, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Good), args.Error(1)
}

func (m *MockGoodRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *MockGoodRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGoodRepository) ListBySeller(ctx context.Context, sellerID int64) ([]entities.GoodView, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.GoodView), args.Error(1)
}

func (m *MockGoodRepository) ListBySellerWithName(ctx context.Context, sellerID int64) ([]entities.SellerGoodView, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SellerGoodView), args.Error(1)
}

func (m *MockGoodRepository) MaxPrice(ctx context.Context, category null.String) (null.Float64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(null.Float64), args.Error(1)
}

func (m *MockGoodRepository) Search(ctx context.Context, category null.String, minPrice, maxPrice float64) ([]entities.SellerGoodView, error) {
	args := m.Called(ctx, category, minPrice, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SellerGoodView), args.Error(1)
}

func (m *MockGoodRepository) GetForOrder(ctx context.Context, ids []int64) (map[int64]*entities.OrderGood, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*entities.OrderGood), args.Error(1)
}

// Mock CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name entities.CategoryName) (*entities.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) EnsureDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateDetails(ctx context.Context, details []*entities.OrderDetail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ListCustomerLines(ctx context.Context, customerID int64) ([]*entities.OrderLine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OrderLine), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Registered(ctx context.Context, user *entities.User) {
	m.Called(ctx, user)
}

func (m *MockNotifier) VerifyRequested(ctx context.Context, user *entities.User, link string) {
	m.Called(ctx, user, link)
}

func (m *MockNotifier) Verified(ctx context.Context, user *entities.User) {
	m.Called(ctx, user)
}

func (m *MockNotifier) ResetRequested(ctx context.Context, user *entities.User, link string) {
	m.Called(ctx, user, link)
}

func (m *MockNotifier) PasswordReset(ctx context.Context, user *entities.User) {
	m.Called(ctx, user)
}

func (m *MockNotifier) AccountDeleted(ctx context.Context, user *entities.User) {
	m.Called(ctx, user)
}

func (m *MockNotifier) OrderPlaced(ctx context.Context, customerEmail string, items []entities.OrderedItem) {
	m.Called(ctx, customerEmail, items)
}

// Mock EmailPublisher
type MockEmailPublisher struct {
	mock.Mock
}

func (m *MockEmailPublisher) Publish(ctx context.Context, msg entities.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
