package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// CatalogStore gives point-in-time read access to restaurants and menus.
type CatalogStore interface {
	// GetRestaurant returns the restaurant regardless of its active flag, or
	// an error matching restaurant.ErrRestaurantNotFound.
	GetRestaurant(ctx context.Context, id int64) (*restaurant.Restaurant, error)

	// GetMenuItem returns an item of the given restaurant, or an error
	// matching restaurant.ErrItemNotFound when the item is missing or belongs
	// to another restaurant.
	GetMenuItem(ctx context.Context, restaurantID, itemID int64) (*restaurant.MenuItem, error)
}
