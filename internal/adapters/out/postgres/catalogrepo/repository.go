package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogStore implements ports.CatalogStore. Reads take no locks.
type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

// GetRestaurant returns the restaurant whether or not it is active.
func (s *GormCatalogStore) GetRestaurant(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", restaurant.ErrRestaurantNotFound, errs.NewObjectNotFoundError("restaurant", id))
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetMenuItem looks the item up within one restaurant only.
func (s *GormCatalogStore) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (*restaurant.MenuItem, error) {
	var dto MenuItemDTO
	err := s.db.WithContext(ctx).
		First(&dto, "id = ? AND restaurant_id = ?", itemID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", restaurant.ErrItemNotFound, errs.NewObjectNotFoundError("menuItem", itemID))
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}
