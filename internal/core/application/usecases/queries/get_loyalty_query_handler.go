package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/loyalty"

	"gorm.io/gorm"
)

type GetLoyaltyQueryHandler struct {
	db *gorm.DB
}

func NewGetLoyaltyQueryHandler(db *gorm.DB) GetLoyaltyQueryHandler {
	return GetLoyaltyQueryHandler{db: db}
}

// Handle reads the applied credits only. A user without a customer row has
// never had an order delivered and gets an empty Bronze account.
func (h GetLoyaltyQueryHandler) Handle(ctx context.Context, query GetLoyaltyQuery) (LoyaltyResponse, error) {
	if err := query.Validate(); err != nil {
		return LoyaltyResponse{}, err
	}

	resp := LoyaltyResponse{UserID: query.UserID()}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT loyalty_points, total_orders, total_spent
		FROM customers
		WHERE user_id = ?`,
		query.UserID(),
	).Rows()
	if err != nil {
		return LoyaltyResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&resp.Points, &resp.TotalOrders, &resp.TotalSpent); err != nil {
			return LoyaltyResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return LoyaltyResponse{}, err
	}

	tier := loyalty.TierFor(resp.TotalOrders)
	resp.Tier = tier.Name
	resp.DiscountPercent = tier.DiscountPercent

	if remaining, next, ok := loyalty.OrdersToNextTier(resp.TotalOrders); ok {
		resp.NextTier = next.Name
		resp.OrdersToNextTier = remaining
	}

	return resp, nil
}
