package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler is a status update to CANCELLED with the same
// locking, ownership and publication rules.
type CancelOrderCommandHandler struct {
	statuses UpdateOrderStatusCommandHandler
}

func NewCancelOrderCommandHandler(statuses UpdateOrderStatusCommandHandler) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{statuses: statuses}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	update, err := NewUpdateOrderStatusCommand(cmd.OrderID(), cmd.UserID(), order.Cancelled)
	if err != nil {
		return nil, err
	}

	return h.statuses.Handle(ctx, update)
}
