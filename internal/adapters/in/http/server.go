// Package http exposes the ordering core over a JSON REST API built on echo.
package http

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type UpdateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type TrackOrderHandler interface {
	Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackingResponse, error)
}

type ListUserOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderSummaryResponse, error)
}

type ListRestaurantsHandler interface {
	Handle(ctx context.Context, query queries.ListRestaurantsQuery) ([]queries.RestaurantResponse, error)
}

type GetRestaurantHandler interface {
	Handle(ctx context.Context, query queries.GetRestaurantQuery) (queries.RestaurantResponse, error)
}

type ListMenuItemsHandler interface {
	Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]queries.MenuItemResponse, error)
}

type GetLoyaltyHandler interface {
	Handle(ctx context.Context, query queries.GetLoyaltyQuery) (queries.LoyaltyResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Commands
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	CancelOrder       CancelOrderHandler

	// Queries
	GetOrder        GetOrderHandler
	TrackOrder      TrackOrderHandler
	ListUserOrders  ListUserOrdersHandler
	ListRestaurants ListRestaurantsHandler
	GetRestaurant   GetRestaurantHandler
	ListMenuItems   ListMenuItemsHandler
	GetLoyalty      GetLoyaltyHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}
