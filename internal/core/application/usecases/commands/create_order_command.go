package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const maxIdempotencyKeyLen = 128

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired   = errs.NewValueIsRequiredError("items")
	ErrAddressIsRequired  = errs.NewValueIsRequiredError("deliveryAddress")
	ErrUserIDIsInvalid    = errs.NewValueIsInvalidError("userId")
	ErrRestaurantIsNotSet = errs.NewValueIsInvalidError("restaurantId")
)

// CreateOrderCommand places a new order for a customer.
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, restaurantID,
//	    lines, "Tverskaya 1", &coords, order.PaymentCard, order.Contact{}, "")
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd.WithIdempotencyKey(key))
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	userID         int64
	restaurantID   int64
	lines          []services.RequestedLine
	address        string
	destination    *kernel.Coordinates
	paymentMethod  order.PaymentMethod
	contact        order.Contact
	comment        string
	idempotencyKey string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID, restaurantID int64,
	lines []services.RequestedLine,
	address string,
	destination *kernel.Coordinates,
	paymentMethod order.PaymentMethod,
	contact order.Contact,
	comment string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		contact: contact,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setAddress(address),
		cmd.setDestination(destination),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithIdempotencyKey returns a copy carrying a client-supplied request key.
// Keys longer than 128 bytes are truncated.
func (c CreateOrderCommand) WithIdempotencyKey(key string) CreateOrderCommand {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLen {
		key = key[:maxIdempotencyKeyLen]
	}
	c.idempotencyKey = key
	return c
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c CreateOrderCommand) UserID() int64                      { return c.userID }
func (c CreateOrderCommand) RestaurantID() int64                { return c.restaurantID }
func (c CreateOrderCommand) Address() string                    { return c.address }
func (c CreateOrderCommand) Destination() *kernel.Coordinates   { return c.destination }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CreateOrderCommand) Contact() order.Contact             { return c.contact }
func (c CreateOrderCommand) Comment() string                    { return c.comment }
func (c CreateOrderCommand) IdempotencyKey() string             { return c.idempotencyKey }

func (c CreateOrderCommand) Lines() []services.RequestedLine {
	out := make([]services.RequestedLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setUserID(id int64) error {
	if id <= 0 {
		return ErrUserIDIsInvalid
	}
	c.userID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id int64) error {
	if id <= 0 {
		return ErrRestaurantIsNotSet
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for i, l := range lines {
		if l.MenuItemID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("line %d: menu item id %d is not greater than 0", i, l.MenuItemID))
		}
		if l.Quantity < 1 || l.Quantity > order.MaxLineQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 1, order.MaxLineQuantity)
		}
	}
	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDestination(destination *kernel.Coordinates) error {
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(pm order.PaymentMethod) error {
	if err := pm.Validate(); err != nil {
		return err
	}
	c.paymentMethod = pm
	return nil
}
