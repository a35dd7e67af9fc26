package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)

	ErrRestaurantIDIsInvalid = errs.NewValueIsInvalidError("restaurantID")
)

// GetRestaurantQuery loads a single active restaurant.
type GetRestaurantQuery struct {
	restaurantID int64
	guard        guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID int64) (GetRestaurantQuery, error) {
	if restaurantID <= 0 {
		return GetRestaurantQuery{}, ErrRestaurantIDIsInvalid
	}
	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) RestaurantID() int64 { return q.restaurantID }
