package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// placedOrder is user 42's order of 2 x 450 plus a 150 fee, moved through
// steps one minute apart.
func placedOrder(t *testing.T, steps ...order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 10, "Margherita", 2, decimal.NewFromInt(450), "no olives", 0)
	require.NoError(t, err)

	dest, err := kernel.NewCoordinates(55.76, 37.62)
	require.NoError(t, err)
	eta := placedAt.Add(40 * time.Minute)

	id := kernel.NewUUID()
	o, err := order.NewOrder(id, order.NewNumber(id, placedAt), order.Draft{
		UserID:        42,
		RestaurantID:  1,
		PaymentMethod: order.PaymentCash,
		Lines:         []*order.Line{line},
		DeliveryFee:   decimal.NewFromInt(150),
		Delivery:      order.Delivery{Address: "Arbat 10", Coordinates: &dest, EstimatedAt: &eta},
		Contact:       order.Contact{Name: "Ivan", Phone: "+79990000000"},
	}, placedAt)
	require.NoError(t, err)

	for i, s := range steps {
		require.NoError(t, o.ChangeStatus(s, placedAt.Add(time.Duration(i+1)*time.Minute)))
	}
	return o
}

func pizzeria(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	loc, err := kernel.NewCoordinates(55.75, 37.61)
	require.NoError(t, err)
	terms, err := restaurant.NewDeliveryTerms(decimal.NewFromInt(150), decimal.NewFromInt(1000), 15, 30)
	require.NoError(t, err)
	r, err := restaurant.RestoreRestaurant(1, restaurant.Profile{
		Name:    "Pizza Roma",
		Phone:   "+74950000000",
		Address: "Tverskaya 1",
	}, loc, terms, false, 4.5)
	require.NoError(t, err)
	return r
}
