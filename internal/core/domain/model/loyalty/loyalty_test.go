package loyalty_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/loyalty"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"0", 0},
		{"99.99", 0},
		{"100", 1},
		{"860", 8},
		{"1999.99", 19},
		{"-50", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, loyalty.PointsFor(decimal.RequireFromString(tt.amount)), tt.amount)
	}
}

func TestNewCredit(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := loyalty.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 42, decimal.NewFromInt(860), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(8), c.Points())
		assert.False(t, c.IsApplied())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("invalid", func(t *testing.T) {
		c, err := loyalty.NewCredit(kernel.UUID{}, kernel.UUID{}, 0, decimal.NewFromInt(-1), now)

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestAccount_Apply(t *testing.T) {
	newAccount := func(t *testing.T) *loyalty.Account {
		t.Helper()
		a, err := loyalty.RestoreAccount(42, nil, 3, 19, decimal.NewFromInt(5000))
		require.NoError(t, err)
		return a
	}

	t.Run("adds order, spend and points", func(t *testing.T) {
		a := newAccount(t)
		c, err := loyalty.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 42, decimal.RequireFromString("860.50"), now)
		require.NoError(t, err)

		require.NoError(t, a.Apply(c, now))

		assert.Equal(t, int64(20), a.TotalOrders())
		assert.Equal(t, int64(11), a.Points())
		assert.True(t, decimal.RequireFromString("5860.50").Equal(a.TotalSpent()))
		assert.Equal(t, "Silver", a.Tier().Name)
		require.NotNil(t, c.AppliedAt())
		assert.Equal(t, now, *c.AppliedAt())
	})

	t.Run("applies once", func(t *testing.T) {
		a := newAccount(t)
		c, _ := loyalty.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 42, decimal.NewFromInt(100), now)
		require.NoError(t, a.Apply(c, now))

		require.ErrorIs(t, a.Apply(c, now), loyalty.ErrCreditAlreadyApplied)
		assert.Equal(t, int64(20), a.TotalOrders())
	})

	t.Run("rejects credits of other customers", func(t *testing.T) {
		a := newAccount(t)
		c, _ := loyalty.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 7, decimal.NewFromInt(100), now)

		require.ErrorIs(t, a.Apply(c, now), loyalty.ErrForeignCredit)
		assert.False(t, c.IsApplied())
	})

	t.Run("restored credits keep applied state", func(t *testing.T) {
		a := newAccount(t)
		applied := now.Add(-time.Hour)
		c, err := loyalty.RestoreCredit(kernel.NewUUID(), kernel.NewUUID(), 42, decimal.NewFromInt(100), now, &applied)
		require.NoError(t, err)

		require.ErrorIs(t, a.Apply(c, now), loyalty.ErrCreditAlreadyApplied)
	})
}

func TestRestoreAccount(t *testing.T) {
	_, err := loyalty.RestoreAccount(0, nil, 0, 0, decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = loyalty.RestoreAccount(1, nil, -1, 0, decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		orders   int64
		name     string
		discount int
	}{
		{0, "Bronze", 0},
		{19, "Bronze", 0},
		{20, "Silver", 5},
		{49, "Silver", 5},
		{50, "Gold", 10},
		{500, "Gold", 10},
	}
	for _, tt := range tests {
		tier := loyalty.TierFor(tt.orders)
		assert.Equal(t, tt.name, tier.Name, tt.orders)
		assert.Equal(t, tt.discount, tier.DiscountPercent, tt.orders)
	}
}

func TestOrdersToNextTier(t *testing.T) {
	remaining, next, ok := loyalty.OrdersToNextTier(5)
	require.True(t, ok)
	assert.Equal(t, int64(15), remaining)
	assert.Equal(t, "Silver", next.Name)

	remaining, next, ok = loyalty.OrdersToNextTier(20)
	require.True(t, ok)
	assert.Equal(t, int64(30), remaining)
	assert.Equal(t, "Gold", next.Name)

	_, _, ok = loyalty.OrdersToNextTier(50)
	assert.False(t, ok)
}
