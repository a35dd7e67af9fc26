package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in   string
		want order.PaymentMethod
	}{
		{"", order.PaymentCash},
		{"cash", order.PaymentCash},
		{"card", order.PaymentCard},
		{"telegram_stars", order.PaymentTelegramStars},
		{"crypto", order.PaymentCrypto},
	}
	for _, tt := range tests {
		got, err := order.ParsePaymentMethod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := order.ParsePaymentMethod("barter")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
