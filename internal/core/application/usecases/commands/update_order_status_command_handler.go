package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/loyalty"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies one lifecycle step under a row lock.
//
// Delivered orders enqueue a loyalty credit in the same transaction. Orders
// the unit of work wrote are published after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.StatusNotifier
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates the handler. notifier may be nil.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.StatusNotifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns an error matching order.ErrOrderNotFound for unknown orders
// and for orders of other users, and order.ErrIllegalTransition for changes
// outside the lifecycle table.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.EnsureOwnedBy(cmd.UserID()); err != nil {
		return nil, err
	}

	now := h.now()
	if err = o.ChangeStatus(cmd.Status(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.Status() == order.Delivered {
		credit, creditErr := loyalty.NewCredit(kernel.NewUUID(), o.ID(), o.UserID(), o.Total(), now)
		if creditErr != nil {
			return nil, creditErr
		}
		if err = uow.LoyaltyOutbox().Enqueue(ctx, credit); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.notifier != nil {
		h.publish(ctx, uow.TrackedOrders(), now)
	}

	return o, nil
}

// publish announces the committed status of every order the unit of work
// wrote.
func (h UpdateOrderStatusCommandHandler) publish(ctx context.Context, written []*order.Order, at time.Time) {
	for _, o := range written {
		h.notifier.NotifyStatusChanged(ctx, ports.StatusChange{
			OrderID:     o.ID(),
			OrderNumber: o.Number(),
			UserID:      o.UserID(),
			Status:      o.Status(),
			At:          at,
		})
	}
}
