package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const MaxLineQuantity = 99

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order. Name and unit price are snapshots of
// the menu item at creation time and never follow later catalog changes.
type Line struct {
	id         kernel.UUID
	menuItemID int64
	name       string
	quantity   int
	unitPrice  decimal.Decimal
	comment    string
	position   int

	isConstructed bool
}

func NewLine(
	id kernel.UUID,
	menuItemID int64,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
	comment string,
	position int,
) (*Line, error) {
	l := &Line{
		comment:       strings.TrimSpace(comment),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setMenuItemID(menuItemID),
		l.setName(name),
		l.setQuantity(quantity),
		l.setUnitPrice(unitPrice),
		l.setPosition(position),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID            { return l.id }
func (l *Line) MenuItemID() int64          { return l.menuItemID }
func (l *Line) Name() string               { return l.name }
func (l *Line) Quantity() int              { return l.quantity }
func (l *Line) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l *Line) Comment() string            { return l.comment }
func (l *Line) Position() int              { return l.position }

// Total is quantity × unit price.
func (l *Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItemID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId", fmt.Errorf("%d is not greater than 0", id))
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is negative", position))
	}
	l.position = position
	return nil
}
