package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// StatusChange describes a committed order status change.
type StatusChange struct {
	OrderID     kernel.UUID
	OrderNumber order.Number
	UserID      int64
	Status      order.Status
	At          time.Time
}

// StatusNotifier publishes status changes to customers. Implementations must
// not block the caller on delivery.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, change StatusChange)
}
