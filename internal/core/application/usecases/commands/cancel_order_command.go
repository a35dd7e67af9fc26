package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a pending or confirmed order of the caller.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, userID int64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) UserID() int64        { return c.userID }

func (c *CancelOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CancelOrderCommand) setUserID(id int64) error {
	if id <= 0 {
		return ErrUserIDIsInvalid
	}
	c.userID = id
	return nil
}
