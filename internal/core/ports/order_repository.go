package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Not-found lookups return an error matching order.ErrOrderNotFound.
type OrderRepository interface {
	// Add persists a new order with all its lines. A duplicate order number
	// is reported as ErrDuplicateOrderNumber.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and timestamp changes of an existing order.
	// Lines are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order with its lines and locks the row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
