package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLoyaltyQueryIsNotConstructed = errors.New(
	"GetLoyaltyQuery must be created via NewGetLoyaltyQuery constructor",
)

// GetLoyaltyQuery reads the loyalty standing of a user.
type GetLoyaltyQuery struct {
	userID int64
	guard  guard.ConstructorGuard
}

func NewGetLoyaltyQuery(userID int64) (GetLoyaltyQuery, error) {
	if userID <= 0 {
		return GetLoyaltyQuery{}, ErrUserIDIsInvalid
	}
	return GetLoyaltyQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetLoyaltyQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyQueryIsNotConstructed)
}

func (q GetLoyaltyQuery) UserID() int64 { return q.userID }

// LoyaltyResponse summarises a user's loyalty account. NextTier is empty and
// OrdersToNextTier zero at the top tier. DiscountPercent is informational.
type LoyaltyResponse struct {
	UserID           int64
	Points           int64
	TotalOrders      int64
	TotalSpent       decimal.Decimal
	Tier             string
	DiscountPercent  int
	NextTier         string
	OrdersToNextTier int64
}
