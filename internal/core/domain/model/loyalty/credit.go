package loyalty

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrCreditIsNotConstructed = errors.New("Credit must be created via NewCredit constructor")

// pointsUnit is the amount of money that earns one point.
var pointsUnit = decimal.NewFromInt(100)

// Credit is the pending reward of one delivered order. There is at most one
// credit per order.
type Credit struct {
	id        kernel.UUID
	orderID   kernel.UUID
	userID    int64
	amount    decimal.Decimal
	createdAt time.Time
	appliedAt *time.Time

	isConstructed bool
}

func NewCredit(id, orderID kernel.UUID, userID int64, amount decimal.Decimal, now time.Time) (*Credit, error) {
	c := &Credit{createdAt: now, isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setUserID(userID),
		c.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCredit rebuilds a credit loaded from the outbox table.
func RestoreCredit(
	id, orderID kernel.UUID,
	userID int64,
	amount decimal.Decimal,
	createdAt time.Time,
	appliedAt *time.Time,
) (*Credit, error) {
	c, err := NewCredit(id, orderID, userID, amount, createdAt)
	if err != nil {
		return nil, err
	}
	c.appliedAt = appliedAt
	return c, nil
}

func (c *Credit) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCreditIsNotConstructed
	}
	return nil
}

func (c *Credit) ID() kernel.UUID         { return c.id }
func (c *Credit) OrderID() kernel.UUID    { return c.orderID }
func (c *Credit) UserID() int64           { return c.userID }
func (c *Credit) Amount() decimal.Decimal { return c.amount }
func (c *Credit) CreatedAt() time.Time    { return c.createdAt }
func (c *Credit) AppliedAt() *time.Time   { return c.appliedAt }
func (c *Credit) IsApplied() bool         { return c.appliedAt != nil }

// Points is floor(amount / 100).
func (c *Credit) Points() int64 {
	return PointsFor(c.amount)
}

func (c *Credit) markApplied(now time.Time) {
	at := now
	c.appliedAt = &at
}

// PointsFor returns the number of points earned by spending amount.
func PointsFor(amount decimal.Decimal) int64 {
	if !amount.IsPositive() {
		return 0
	}
	return amount.Div(pointsUnit).Floor().IntPart()
}

func (c *Credit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Credit) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *Credit) setUserID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not greater than 0", id))
	}
	c.userID = id
	return nil
}

func (c *Credit) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	c.amount = amount
	return nil
}
