package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrRestaurantNotFound covers unknown and inactive restaurants alike.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via RestoreRestaurant constructor")
)

// Profile is the descriptive part of a restaurant shown to customers.
type Profile struct {
	Name        string
	Description string
	Phone       string
	Address     string
}

// Restaurant is a catalog entry.
type Restaurant struct {
	id       int64
	profile  Profile
	location kernel.Coordinates
	terms    DeliveryTerms
	active   bool
	rating   float64
	guard    guard.ConstructorGuard
}

// RestoreRestaurant rebuilds a restaurant loaded from storage.
func RestoreRestaurant(
	id int64,
	profile Profile,
	location kernel.Coordinates,
	terms DeliveryTerms,
	active bool,
	rating float64,
) (*Restaurant, error) {
	r := &Restaurant{
		active: active,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(profile),
		r.setLocation(location),
		r.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() int64                    { return r.id }
func (r *Restaurant) Profile() Profile             { return r.profile }
func (r *Restaurant) Location() kernel.Coordinates { return r.location }
func (r *Restaurant) Terms() DeliveryTerms         { return r.terms }
func (r *Restaurant) IsActive() bool               { return r.active }
func (r *Restaurant) Rating() float64              { return r.rating }

// EnsureAcceptsOrders returns ErrRestaurantNotFound for inactive restaurants.
func (r *Restaurant) EnsureAcceptsOrders() error {
	if !r.active {
		return fmt.Errorf("%w: restaurant %d is inactive", ErrRestaurantNotFound, r.id)
	}
	return nil
}

func (r *Restaurant) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", fmt.Errorf("%d is not greater than 0", id))
	}
	r.id = id
	return nil
}

func (r *Restaurant) setProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.profile = p
	return nil
}

func (r *Restaurant) setLocation(location kernel.Coordinates) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Restaurant) setTerms(terms DeliveryTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	r.terms = terms
	return nil
}
