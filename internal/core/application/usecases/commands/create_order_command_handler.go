package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

const (
	// maxNumberAttempts bounds retries on order number collisions.
	maxNumberAttempts = 3
	idempotencyTTL    = 24 * time.Hour
)

// ErrDuplicateRequest is returned when an idempotency key is reused.
var ErrDuplicateRequest = errors.New("duplicate request")

// CreateOrderCommandHandler prices and persists new orders.
//
// Pricing runs before any write; a pricing error leaves storage untouched.
// The order and all its lines are stored in a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	pricer      services.OrderPricer
	idempotency ports.IdempotencyGuard
	now         func() time.Time
}

// NewCreateOrderCommandHandler creates the handler. idempotency may be nil,
// in which case request keys are ignored.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricer services.OrderPricer,
	idempotency ports.IdempotencyGuard,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		pricer:      pricer,
		idempotency: idempotency,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (_ *order.Order, err error) {
	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	if key := h.requestKey(cmd); key != "" {
		acquired, acquireErr := h.idempotency.Acquire(ctx, key, idempotencyTTL)
		if acquireErr != nil {
			return nil, fmt.Errorf("acquire idempotency key: %w", acquireErr)
		}
		if !acquired {
			return nil, ErrDuplicateRequest
		}
		defer func() {
			if err != nil {
				err = errors.Join(err, h.idempotency.Release(context.WithoutCancel(ctx), key))
			}
		}()
	}

	priced, err := h.pricer.Price(ctx, cmd.RestaurantID(), cmd.Lines(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	lines, err := priced.OrderLines()
	if err != nil {
		return nil, err
	}

	now := h.now()
	delivery := order.Delivery{
		Address:     cmd.Address(),
		Coordinates: cmd.Destination(),
	}
	if cmd.Destination() != nil {
		eta := now.Add(time.Duration(priced.Quote.ETAMinutes) * time.Minute)
		delivery.EstimatedAt = &eta
	}

	o, err := order.NewOrder(cmd.OrderID(), order.NewNumber(kernel.NewUUID(), now), order.Draft{
		UserID:        cmd.UserID(),
		RestaurantID:  cmd.RestaurantID(),
		PaymentMethod: cmd.PaymentMethod(),
		Lines:         lines,
		DeliveryFee:   priced.Quote.Fee,
		Delivery:      delivery,
		Contact:       cmd.Contact(),
		Comment:       cmd.Comment(),
	}, now)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = h.persist(ctx, o)
		if !errors.Is(err, ports.ErrDuplicateOrderNumber) || attempt == maxNumberAttempts {
			break
		}
		if err = o.RenewNumber(kernel.NewUUID(), now); err != nil {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) requestKey(cmd CreateOrderCommand) string {
	if h.idempotency == nil || cmd.IdempotencyKey() == "" {
		return ""
	}
	return fmt.Sprintf("order:create:%d:%s", cmd.UserID(), cmd.IdempotencyKey())
}
