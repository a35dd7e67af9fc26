package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func mustLine(t *testing.T, menuItemID int64, qty int, price string, position int) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), menuItemID, "Item", qty, decimal.RequireFromString(price), "", position)
	require.NoError(t, err)
	return l
}

func validDraft(t *testing.T) order.Draft {
	t.Helper()
	coords, err := kernel.NewCoordinates(55.75, 37.61)
	require.NoError(t, err)
	eta := createdAt.Add(46 * time.Minute)

	return order.Draft{
		UserID:        42,
		RestaurantID:  1,
		PaymentMethod: order.PaymentCard,
		Lines: []*order.Line{
			mustLine(t, 10, 2, "200", 0),
			mustLine(t, 11, 1, "250", 1),
		},
		DeliveryFee: decimal.NewFromInt(210),
		Delivery: order.Delivery{
			Address:     "Tverskaya 1",
			Coordinates: &coords,
			EstimatedAt: &eta,
		},
		Contact: order.Contact{Name: "Ann", Phone: "+70000000000"},
		Comment: "ring twice",
	}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	o, err := order.NewOrder(id, order.NewNumber(id, createdAt), validDraft(t), createdAt)
	require.NoError(t, err)
	return o
}

// advance walks o through the given statuses, one minute apart.
func advance(t *testing.T, o *order.Order, steps ...order.Status) {
	t.Helper()
	for i, s := range steps {
		require.NoError(t, o.ChangeStatus(s, createdAt.Add(time.Duration(i+1)*time.Minute)))
	}
}
