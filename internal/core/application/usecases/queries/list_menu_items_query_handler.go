package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle returns restaurant.ErrRestaurantNotFound when the restaurant is
// missing or inactive, so an empty slice always means an empty menu.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var active bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = ? AND is_active)`,
		query.RestaurantID(),
	).Scan(&active).Error
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, restaurantNotFound(query.RestaurantID())
	}

	filter := query.Filter()
	tx := h.db.WithContext(ctx).
		Table("menu_items").
		Select("id, restaurant_id, name, description, price, is_available, is_vegetarian").
		Where("restaurant_id = ?", query.RestaurantID())
	if filter.AvailableOnly {
		tx = tx.Where("is_available")
	}
	if filter.VegetarianOnly {
		tx = tx.Where("is_vegetarian")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	rows, err := tx.Order("sort_order, name, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var item MenuItemResponse
		if err = rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.IsAvailable,
			&item.IsVegetarian,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
