package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order of the caller to a new status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  int64
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, userID int64, status order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) UserID() int64        { return c.userID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setUserID(id int64) error {
	if id <= 0 {
		return ErrUserIDIsInvalid
	}
	c.userID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}
