package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetOrderQueryHandler reads an order through the repository. Orders of
// other users are reported as not found.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if err = o.EnsureOwnedBy(query.UserID()); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
