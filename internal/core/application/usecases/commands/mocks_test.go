package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/loyalty"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLoyaltyOutbox struct{ mock.Mock }

func (m *MockLoyaltyOutbox) Enqueue(ctx context.Context, c *loyalty.Credit) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLoyaltyOutbox) ClaimPending(ctx context.Context, limit int) ([]*loyalty.Credit, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loyalty.Credit), args.Error(1)
}

func (m *MockLoyaltyOutbox) MarkApplied(ctx context.Context, c *loyalty.Credit) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) GetOrCreateForUpdate(ctx context.Context, userID int64) (*loyalty.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Account), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, a *loyalty.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCustomerRepository) TelegramChatID(ctx context.Context, userID int64) (int64, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LoyaltyOutbox() ports.LoyaltyOutbox {
	args := m.Called()
	return args.Get(0).(ports.LoyaltyOutbox)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) TrackedOrders() []*order.Order {
	args := m.Called()
	return args.Get(0).([]*order.Order)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLoyaltyUoWFactory struct{ mock.Mock }

func (m *MockLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	args := m.Called()
	return args.Get(0).(commands.LoyaltyUoW)
}

type MockCatalogStore struct{ mock.Mock }

func (m *MockCatalogStore) GetRestaurant(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockCatalogStore) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (*restaurant.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.MenuItem), args.Error(1)
}

type MockIdempotencyGuard struct{ mock.Mock }

func (m *MockIdempotencyGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyGuard) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) {
	m.Called(ctx, change)
}
