package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemNotFound is returned when a menu item does not exist in the
	// requested restaurant.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrItemUnavailable is returned for items switched off by the restaurant.
	ErrItemUnavailable = errors.New("menu item is unavailable")

	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via RestoreMenuItem constructor")
)

// MenuItemState is the persisted form of a menu item.
type MenuItemState struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Available    bool
	Vegetarian   bool
	SortOrder    int
}

type MenuItem struct {
	id           int64
	restaurantID int64
	name         string
	description  string
	price        decimal.Decimal
	available    bool
	vegetarian   bool
	sortOrder    int
	guard        guard.ConstructorGuard
}

func RestoreMenuItem(state MenuItemState) (*MenuItem, error) {
	m := &MenuItem{
		description: state.Description,
		available:   state.Available,
		vegetarian:  state.Vegetarian,
		sortOrder:   state.SortOrder,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(state.ID),
		m.setRestaurantID(state.RestaurantID),
		m.setName(state.Name),
		m.setPrice(state.Price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() int64              { return m.id }
func (m *MenuItem) RestaurantID() int64    { return m.restaurantID }
func (m *MenuItem) Name() string           { return m.name }
func (m *MenuItem) Description() string    { return m.description }
func (m *MenuItem) Price() decimal.Decimal { return m.price }
func (m *MenuItem) IsAvailable() bool      { return m.available }
func (m *MenuItem) IsVegetarian() bool     { return m.vegetarian }
func (m *MenuItem) SortOrder() int         { return m.sortOrder }

// EnsureOrderable returns ErrItemUnavailable when the item is switched off.
func (m *MenuItem) EnsureOrderable() error {
	if !m.available {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, m.name)
	}
	return nil
}

func (m *MenuItem) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId", fmt.Errorf("%d is not greater than 0", id))
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", fmt.Errorf("%d is not greater than 0", id))
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}
