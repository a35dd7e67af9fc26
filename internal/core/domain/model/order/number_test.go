package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	seed, err := kernel.ParseUUID("9f3a0c11-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	now := time.Date(2025, 1, 14, 23, 30, 0, 0, time.UTC)

	n := order.NewNumber(seed, now)

	assert.Equal(t, order.Number("ORD-20250114-9F3A0C"), n)
	_, err = order.ParseNumber(n.String())
	require.NoError(t, err)
}

func TestNewNumber_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 1, 15, 1, 0, 0, 0, loc)

	n := order.NewNumber(kernel.NewUUID(), now)

	assert.Contains(t, n.String(), "ORD-20250114-")
}

func TestParseNumber(t *testing.T) {
	for _, in := range []string{"", "ORD-2025-ABCDEF", "ORD-20250114-abcdef", "ORD-20250114-ABCDEFG", "XYZ-20250114-ABCDEF"} {
		_, err := order.ParseNumber(in)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
	}
}
