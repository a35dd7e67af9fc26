package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned by it
// use the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	LoyaltyOutbox() LoyaltyOutbox
	CustomerRepository() CustomerRepository

	// TrackedOrders lists the orders written through OrderRepository, once
	// each, in first-write order. The list survives Commit.
	TrackedOrders() []*order.Order
}
