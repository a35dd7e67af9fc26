// Package catalogrepo reads restaurants and menu items for the ordering core.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// RestaurantDTO is a row of the restaurants table.
type RestaurantDTO struct {
	ID                    int64  `gorm:"primaryKey"`
	Name                  string `gorm:"type:varchar(255);not null"`
	Description           string
	Phone                 string
	Address               string          `gorm:"not null"`
	Latitude              float64         `gorm:"not null"`
	Longitude             float64         `gorm:"not null"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	FreeDeliveryThreshold decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MaxDeliveryDistance   float64         `gorm:"not null"`
	AvgDeliveryTime       int             `gorm:"not null"`
	IsActive              bool            `gorm:"not null"`
	Rating                float64         `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is a row of the menu_items table.
type MenuItemDTO struct {
	ID           int64 `gorm:"primaryKey"`
	RestaurantID int64 `gorm:"not null;index"`
	Name         string
	Description  string
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsAvailable  bool
	IsVegetarian bool
	SortOrder    int
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	location, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	terms, err := restaurant.NewDeliveryTerms(
		dto.DeliveryFee,
		dto.FreeDeliveryThreshold,
		dto.MaxDeliveryDistance,
		dto.AvgDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		dto.ID,
		restaurant.Profile{
			Name:        dto.Name,
			Description: dto.Description,
			Phone:       dto.Phone,
			Address:     dto.Address,
		},
		location,
		terms,
		dto.IsActive,
		dto.Rating,
	)
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	return restaurant.RestoreMenuItem(restaurant.MenuItemState{
		ID:           dto.ID,
		RestaurantID: dto.RestaurantID,
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        dto.Price,
		Available:    dto.IsAvailable,
		Vegetarian:   dto.IsVegetarian,
		SortOrder:    dto.SortOrder,
	})
}
