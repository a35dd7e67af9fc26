package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotFound is returned for unknown order ids.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNotOwner is reported as a kind of ErrOrderNotFound so that callers
	// cannot probe for other users' orders.
	ErrNotOwner = fmt.Errorf("%w: order belongs to another user", ErrOrderNotFound)

	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Contact is the optional customer contact captured with the order.
type Contact struct {
	Name  string
	Phone string
}

// Delivery describes where the order goes. Coordinates and EstimatedAt are
// set only when the customer shared a location.
type Delivery struct {
	Address     string
	Coordinates *kernel.Coordinates
	EstimatedAt *time.Time
}

// Draft carries the priced input of a new order.
type Draft struct {
	UserID        int64
	RestaurantID  int64
	PaymentMethod PaymentMethod
	Lines         []*Line
	DeliveryFee   decimal.Decimal
	Delivery      Delivery
	Contact       Contact
	Comment       string
}

// Timestamps records when each lifecycle step happened. A nil pointer means
// the step was never reached.
type Timestamps struct {
	CreatedAt        time.Time
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	ReadyAt          *time.Time
	DeliveringAt     *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	ActualDeliveryAt *time.Time
}

// State is the persisted form of an order accepted by RestoreOrder.
type State struct {
	ID            kernel.UUID
	Number        Number
	UserID        int64
	RestaurantID  int64
	Status        Status
	PaymentMethod PaymentMethod
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Delivery      Delivery
	Contact       Contact
	Comment       string
	Lines         []*Line
	Timestamps    Timestamps
}

// Order is the aggregate root of the ordering core.
//
// Invariants:
//   - total = subtotal + delivery fee - discount
//   - subtotal is the sum of line totals
//   - status moves only along the lifecycle table
//   - nothing changes once the status is terminal
type Order struct {
	id            kernel.UUID
	number        Number
	userID        int64
	restaurantID  int64
	status        Status
	paymentMethod PaymentMethod
	subtotal      decimal.Decimal
	deliveryFee   decimal.Decimal
	discount      decimal.Decimal
	total         decimal.Decimal
	delivery      Delivery
	contact       Contact
	comment       string
	lines         []*Line
	timestamps    Timestamps

	isConstructed bool
}

// NewOrder builds a PENDING order from a priced draft. The subtotal is
// derived from the lines and the discount starts at zero.
func NewOrder(id kernel.UUID, number Number, draft Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		discount:      decimal.Zero,
		contact:       trimContact(draft.Contact),
		comment:       strings.TrimSpace(draft.Comment),
		timestamps:    Timestamps{CreatedAt: now},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(draft.UserID),
		o.setRestaurantID(draft.RestaurantID),
		o.setPaymentMethod(draft.PaymentMethod),
		o.setLines(draft.Lines),
		o.setDeliveryFee(draft.DeliveryFee),
		o.setDelivery(draft.Delivery),
	); err != nil {
		return nil, err
	}

	o.subtotal = sumLines(o.lines)
	o.total = o.subtotal.Add(o.deliveryFee).Sub(o.discount)

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Lines may be omitted
// by list views; when present they must add up to the subtotal.
func RestoreOrder(state State) (*Order, error) {
	o := &Order{
		subtotal:      state.Subtotal,
		discount:      state.Discount,
		total:         state.Total,
		contact:       state.Contact,
		comment:       state.Comment,
		lines:         state.Lines,
		timestamps:    state.Timestamps,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(state.ID),
		o.setNumber(state.Number),
		o.setUserID(state.UserID),
		o.setRestaurantID(state.RestaurantID),
		o.setStatus(state.Status),
		o.setPaymentMethod(state.PaymentMethod),
		o.setDeliveryFee(state.DeliveryFee),
		o.setDelivery(state.Delivery),
	); err != nil {
		return nil, err
	}

	if want := o.subtotal.Add(o.deliveryFee).Sub(o.discount); !want.Equal(o.total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s != %s + %s - %s", o.total, o.subtotal, o.deliveryFee, o.discount))
	}

	if len(o.lines) > 0 {
		for _, l := range o.lines {
			if err := l.Validate(); err != nil {
				return nil, err
			}
		}
		if sum := sumLines(o.lines); !sum.Equal(o.subtotal) {
			return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
				fmt.Errorf("lines add up to %s, subtotal is %s", sum, o.subtotal))
		}
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() Number               { return o.number }
func (o *Order) UserID() int64                { return o.userID }
func (o *Order) RestaurantID() int64          { return o.restaurantID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Subtotal() decimal.Decimal    { return o.subtotal }
func (o *Order) DeliveryFee() decimal.Decimal { return o.deliveryFee }
func (o *Order) Discount() decimal.Decimal    { return o.discount }
func (o *Order) Total() decimal.Decimal       { return o.total }
func (o *Order) Delivery() Delivery           { return o.delivery }
func (o *Order) Contact() Contact             { return o.contact }
func (o *Order) Comment() string              { return o.comment }
func (o *Order) Timestamps() Timestamps       { return o.timestamps }

// Lines returns the order lines sorted by position.
func (o *Order) Lines() []*Line {
	out := make([]*Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// EnsureOwnedBy returns ErrNotOwner when userID did not place the order.
func (o *Order) EnsureOwnedBy(userID int64) error {
	if o.userID != userID {
		return ErrNotOwner
	}
	return nil
}

// RenewNumber replaces the order number before the first successful save,
// used when storage reports a collision.
func (o *Order) RenewNumber(seed kernel.UUID, now time.Time) error {
	if o.status != Pending {
		return fmt.Errorf("%w: number of a %s order cannot change", ErrIllegalTransition, o.status)
	}
	return o.setNumber(NewNumber(seed, now))
}

// ChangeStatus applies one lifecycle step and stamps its time. Illegal
// requests return ErrIllegalTransition and leave the order untouched.
func (o *Order) ChangeStatus(to Status, now time.Time) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	at := now
	switch next {
	case Confirmed:
		o.timestamps.ConfirmedAt = &at
	case Preparing:
		o.timestamps.PreparingAt = &at
	case Ready:
		o.timestamps.ReadyAt = &at
	case Delivering:
		o.timestamps.DeliveringAt = &at
	case Delivered:
		o.timestamps.DeliveredAt = &at
		o.timestamps.ActualDeliveryAt = &at
	case Cancelled:
		o.timestamps.CancelledAt = &at
	case Unknown, Pending:
	}

	o.status = next
	return nil
}

func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if _, err := ParseNumber(n.String()); err != nil {
		return err
	}
	o.number = n
	return nil
}

func (o *Order) setUserID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.userID = id
	return nil
}

func (o *Order) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setPaymentMethod(pm PaymentMethod) error {
	if err := pm.Validate(); err != nil {
		return err
	}
	o.paymentMethod = pm
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%s is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setDelivery(d Delivery) error {
	d.Address = strings.TrimSpace(d.Address)
	if d.Address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if d.Coordinates != nil {
		if err := d.Coordinates.Validate(); err != nil {
			return err
		}
	}
	o.delivery = d
	return nil
}

func sumLines(lines []*Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func trimContact(c Contact) Contact {
	return Contact{Name: strings.TrimSpace(c.Name), Phone: strings.TrimSpace(c.Phone)}
}
