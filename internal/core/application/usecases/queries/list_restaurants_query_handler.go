package queries

import (
	"context"
	"database/sql"

	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const restaurantColumns = `id, name, description, phone, address, latitude, longitude,
	delivery_fee, free_delivery_threshold, max_delivery_distance, avg_delivery_time, rating`

// haversineKm is the great-circle distance between a restaurant and the point
// bound to its four placeholders: radius, latitude, latitude, longitude.
const haversineKm = `? * 2 * ASIN(SQRT(LEAST(1,
	POWER(SIN(RADIANS(latitude - ?) / 2), 2) +
	COS(RADIANS(?)) * COS(RADIANS(latitude)) * POWER(SIN(RADIANS(longitude - ?) / 2), 2))))`

type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("restaurants")

	if origin := query.Origin(); origin != nil {
		args := distanceArgs(*origin)
		tx = tx.Select(restaurantColumns+", "+haversineKm+" AS distance_km", args...)
		if query.filtersByDistance() {
			tx = tx.Where(haversineKm+" <= ?", append(args, *query.MaxDistanceKm())...)
		}
	} else {
		tx = tx.Select(restaurantColumns + ", NULL AS distance_km")
	}

	tx = tx.Where("is_active")
	if s := query.Search(); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	rows, err := tx.
		Order("rating DESC, id").
		Offset(query.Page().Skip()).
		Limit(query.Page().Limit()).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func distanceArgs(origin kernel.Coordinates) []any {
	return []any{kernel.EarthRadiusKm, origin.Latitude(), origin.Latitude(), origin.Longitude()}
}

func scanRestaurant(rows *sql.Rows) (RestaurantResponse, error) {
	var (
		r        RestaurantResponse
		distance sql.NullFloat64
	)
	err := rows.Scan(
		&r.ID,
		&r.Name,
		&r.Description,
		&r.Phone,
		&r.Address,
		&r.Latitude,
		&r.Longitude,
		&r.DeliveryFee,
		&r.FreeDeliveryThreshold,
		&r.MaxDeliveryDistanceKm,
		&r.AvgDeliveryMinutes,
		&r.Rating,
		&distance,
	)
	if err != nil {
		return RestaurantResponse{}, err
	}
	if distance.Valid {
		r.DistanceKm = &distance.Float64
	}
	return r, nil
}
