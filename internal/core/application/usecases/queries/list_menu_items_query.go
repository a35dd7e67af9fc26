package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// MenuFilter narrows a restaurant menu. The zero value lists every item,
// including unavailable ones; use DefaultMenuFilter for the customer view.
type MenuFilter struct {
	Search         string
	VegetarianOnly bool
	AvailableOnly  bool
}

func DefaultMenuFilter() MenuFilter {
	return MenuFilter{AvailableOnly: true}
}

// ListMenuItemsQuery lists the menu of an active restaurant in display
// order.
type ListMenuItemsQuery struct {
	restaurantID int64
	filter       MenuFilter
	guard        guard.ConstructorGuard
}

func NewListMenuItemsQuery(restaurantID int64, filter MenuFilter) (ListMenuItemsQuery, error) {
	if restaurantID <= 0 {
		return ListMenuItemsQuery{}, ErrRestaurantIDIsInvalid
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return ListMenuItemsQuery{
		restaurantID: restaurantID,
		filter:       filter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) RestaurantID() int64 { return q.restaurantID }
func (q ListMenuItemsQuery) Filter() MenuFilter  { return q.filter }

// MenuItemResponse is a dish as shown on the menu.
type MenuItemResponse struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        decimal.Decimal
	IsAvailable  bool
	IsVegetarian bool
}
