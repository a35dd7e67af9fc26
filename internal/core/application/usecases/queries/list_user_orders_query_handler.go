package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns at most query.Page().Limit() orders. ItemsCount is the sum
// of line quantities.
func (h ListUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUserOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.restaurant_id,
			r.name,
			COALESCE((SELECT SUM(i.quantity) FROM order_items i WHERE i.order_id = o.id), 0),
			o.total,
			o.estimated_delivery_time,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id
		OFFSET ? LIMIT ?`,
		query.UserID(), query.Page().Skip(), query.Page().Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o OrderSummaryResponse
		if err = rows.Scan(
			&o.ID,
			&o.Number,
			&o.Status,
			&o.RestaurantID,
			&o.RestaurantName,
			&o.ItemsCount,
			&o.Total,
			&o.EstimatedDelivery,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
