package http_test

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

type MockTrackOrderHandler struct{ mock.Mock }

func (m *MockTrackOrderHandler) Handle(
	ctx context.Context,
	query queries.TrackOrderQuery,
) (queries.TrackingResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TrackingResponse), args.Error(1)
}

type MockListUserOrdersHandler struct{ mock.Mock }

func (m *MockListUserOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListUserOrdersQuery,
) ([]queries.OrderSummaryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderSummaryResponse), args.Error(1)
}

type MockListRestaurantsHandler struct{ mock.Mock }

func (m *MockListRestaurantsHandler) Handle(
	ctx context.Context,
	query queries.ListRestaurantsQuery,
) ([]queries.RestaurantResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.RestaurantResponse), args.Error(1)
}

type MockGetRestaurantHandler struct{ mock.Mock }

func (m *MockGetRestaurantHandler) Handle(
	ctx context.Context,
	query queries.GetRestaurantQuery,
) (queries.RestaurantResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.RestaurantResponse), args.Error(1)
}

type MockListMenuItemsHandler struct{ mock.Mock }

func (m *MockListMenuItemsHandler) Handle(
	ctx context.Context,
	query queries.ListMenuItemsQuery,
) ([]queries.MenuItemResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.MenuItemResponse), args.Error(1)
}

type MockGetLoyaltyHandler struct{ mock.Mock }

func (m *MockGetLoyaltyHandler) Handle(ctx context.Context, query queries.GetLoyaltyQuery) (queries.LoyaltyResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.LoyaltyResponse), args.Error(1)
}
