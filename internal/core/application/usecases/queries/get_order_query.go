package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)

	ErrUserIDIsInvalid = errs.NewValueIsInvalidError("userID")
)

// GetOrderQuery loads one order of the calling user with its lines.
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  int64
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, userID int64) (GetOrderQuery, error) {
	if err := validateOwner(orderID, userID); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) UserID() int64        { return q.userID }

func validateOwner(orderID kernel.UUID, userID int64) error {
	var err error
	if vErr := orderID.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("orderID", vErr))
	}
	if userID <= 0 {
		err = errors.Join(err, ErrUserIDIsInvalid)
	}
	return err
}
