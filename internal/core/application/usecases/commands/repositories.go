// Package commands contains business operations that modify system state.
// Every command is validated at construction; handlers own the transaction
// boundary through a unit of work.
package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderTracker interface {
		TrackedOrders() []*order.Order
	}

	LoyaltyRepoFactory interface {
		LoyaltyOutbox() ports.LoyaltyOutbox
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW is used by order creation, which touches orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LoyaltyUoW is used by the loyalty ledger, which never reads orders.
	LoyaltyUoW interface {
		TxManager
		LoyaltyRepoFactory
	}

	LoyaltyUoWFactory interface {
		Create() LoyaltyUoW
	}

	// UoW spans orders and the loyalty outbox so that a delivered order and
	// its credit commit together.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... change status, enqueue credit
	//
	//   err = uow.Commit(ctx)
	//
	//   for _, o := range uow.TrackedOrders() {
	//       // publish the committed status
	//   }
	UoW interface {
		TxManager
		OrderRepoFactory
		OrderTracker
		LoyaltyRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
