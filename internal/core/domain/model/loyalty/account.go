package loyalty

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCreditAlreadyApplied = errors.New("loyalty credit is already applied")
	ErrForeignCredit        = errors.New("loyalty credit belongs to another customer")
)

// Account is the loyalty balance of one customer.
type Account struct {
	userID      int64
	telegramID  *int64
	points      int64
	totalOrders int64
	totalSpent  decimal.Decimal
}

// NewAccount opens an empty account for a customer without history.
func NewAccount(userID int64) (*Account, error) {
	return RestoreAccount(userID, nil, 0, 0, decimal.Zero)
}

func RestoreAccount(
	userID int64,
	telegramID *int64,
	points, totalOrders int64,
	totalSpent decimal.Decimal,
) (*Account, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not greater than 0", userID))
	}
	if points < 0 || totalOrders < 0 || totalSpent.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("account",
			fmt.Errorf("negative balance: points=%d orders=%d spent=%s", points, totalOrders, totalSpent))
	}

	return &Account{
		userID:      userID,
		telegramID:  telegramID,
		points:      points,
		totalOrders: totalOrders,
		totalSpent:  totalSpent,
	}, nil
}

func (a *Account) UserID() int64               { return a.userID }
func (a *Account) TelegramID() *int64          { return a.telegramID }
func (a *Account) Points() int64               { return a.points }
func (a *Account) TotalOrders() int64          { return a.totalOrders }
func (a *Account) TotalSpent() decimal.Decimal { return a.totalSpent }

// Tier is derived from the number of delivered orders.
func (a *Account) Tier() Tier {
	return TierFor(a.totalOrders)
}

// Apply adds one delivered order to the account and marks the credit as
// applied. A credit is applied at most once.
func (a *Account) Apply(c *Credit, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsApplied() {
		return fmt.Errorf("%w: %s", ErrCreditAlreadyApplied, c.ID())
	}
	if c.UserID() != a.userID {
		return fmt.Errorf("%w: credit user %d, account user %d", ErrForeignCredit, c.UserID(), a.userID)
	}

	a.totalOrders++
	a.totalSpent = a.totalSpent.Add(c.Amount())
	a.points += c.Points()
	c.markApplied(now)
	return nil
}
