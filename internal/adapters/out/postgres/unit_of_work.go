// Package postgres provides the GORM-based unit of work over the order,
// loyalty outbox and customer repositories.
//
// A unit of work is created per business operation:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	// ... change the order, enqueue a loyalty credit
//	if err := uow.LoyaltyOutbox().Enqueue(ctx, credit); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained after Begin share its transaction. Instances are not
// safe for concurrent use; every goroutine creates its own.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/loyaltyrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool. Every business operation takes a fresh instance.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory binds the factory to an open connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork wraps a single GORM transaction and remembers the orders
// written through it, so a handler can publish their new status once the
// transaction has committed.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err := o.ChangeStatus(order.Delivered, now); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.LoyaltyOutbox().Enqueue(ctx, credit); err != nil {
//	    return err
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("commit: %w", err)
//	}
//
//	for _, o := range uow.TrackedOrders() {
//	    publish(o)
//	}
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op. Starting a new
// transaction forgets the orders tracked by the previous one.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the writes of the transaction permanent. It returns
// gorm.ErrInvalidTransaction without an active transaction.
//
// Example:
//
//	if err := uow.Commit(ctx); err != nil {
//	    // the deferred Rollback discards the transaction
//	    return err
//	}
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction without an active
// transaction, which is the normal outcome of the deferred call after
// Commit.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx) // no-op once committed
//	}()
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns a repository on the current transaction, or on
// the pool before Begin. Orders it writes are tracked.
//
// Example:
//
//	orders := uow.OrderRepository()
//	if err := orders.Add(ctx, o); err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoyaltyOutbox() ports.LoyaltyOutbox {
	return loyaltyrepo.NewGormLoyaltyOutbox(uow.conn())
}

// CustomerRepository returns the loyalty balances on the current
// transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return loyaltyrepo.NewGormCustomerRepository(uow.conn())
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedOrders returns the orders written since Begin, once each, in the
// order they were first written. A committed unit of work keeps the list so
// the caller can publish what was stored; Rollback clears it.
//
// Example:
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//	for _, o := range uow.TrackedOrders() {
//	    notifier.NotifyStatusChanged(ctx, ports.StatusChange{OrderID: o.ID(), Status: o.Status()})
//	}
func (uow *GormUnitOfWork) TrackedOrders() []*order.Order {
	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	out := make([]*order.Order, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, o)
	}
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
