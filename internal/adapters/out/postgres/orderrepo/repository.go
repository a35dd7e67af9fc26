package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository bound to db, which is a
// transaction when used through the unit of work. tracker may be nil for
// read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its lines. A taken order number is
// reported as ports.ErrDuplicateOrderNumber so the caller can retry with a
// fresh one.
//
// Example:
//
//	err := uow.OrderRepository().Add(ctx, o)
//	if errors.Is(err, ports.ErrDuplicateOrderNumber) {
//	    // build the order again with a new number
//	}
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ports.ErrDuplicateOrderNumber, dto.Number)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update writes status and transition timestamps. Lines are never touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{ID: dto.ID}).
		Select(statusColumns).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the orders row with SELECT ... FOR UPDATE. The lock is
// held until the surrounding transaction ends, so it only makes sense after
// Begin.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if errors.Is(err, order.ErrOrderNotFound) {
//	    return err
//	}
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) load(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB {
			return tx.WithContext(ctx).Order("position")
		}).
		First(&dto, "id = ?", id.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func notFound(id kernel.UUID) error {
	return fmt.Errorf("%w: %w", order.ErrOrderNotFound, errs.NewObjectNotFoundError("order", id.String()))
}
