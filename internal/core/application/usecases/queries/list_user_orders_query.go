package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery pages through the orders of one user, newest first.
type ListUserOrdersQuery struct {
	userID int64
	page   Page
	guard  guard.ConstructorGuard
}

func NewListUserOrdersQuery(userID int64, skip, limit int) (ListUserOrdersQuery, error) {
	if userID <= 0 {
		return ListUserOrdersQuery{}, ErrUserIDIsInvalid
	}
	page, err := NewPage(skip, limit)
	if err != nil {
		return ListUserOrdersQuery{}, err
	}
	return ListUserOrdersQuery{
		userID: userID,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) UserID() int64 { return q.userID }
func (q ListUserOrdersQuery) Page() Page    { return q.page }

// OrderSummaryResponse is a row of the order history.
type OrderSummaryResponse struct {
	ID                uuid.UUID
	Number            string
	Status            string
	RestaurantID      int64
	RestaurantName    string
	ItemsCount        int
	Total             decimal.Decimal
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}
