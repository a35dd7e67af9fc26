package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle reports inactive restaurants as not found.
func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+restaurantColumns+`, NULL::double precision
		FROM restaurants
		WHERE id = ? AND is_active`,
		query.RestaurantID(),
	).Rows()
	if err != nil {
		return RestaurantResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RestaurantResponse{}, err
		}
		return RestaurantResponse{}, restaurantNotFound(query.RestaurantID())
	}

	return scanRestaurant(rows)
}

func restaurantNotFound(id int64) error {
	return fmt.Errorf("%w: %w", restaurant.ErrRestaurantNotFound, errs.NewObjectNotFoundError("restaurant", id))
}
