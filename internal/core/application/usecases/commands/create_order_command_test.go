package commands_test

import (
	"strings"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestedLines() []services.RequestedLine {
	return []services.RequestedLine{
		{MenuItemID: 10, Quantity: 2},
		{MenuItemID: 11, Quantity: 1, Comment: "no onions"},
	}
}

func newCreateCmd(t *testing.T, dest *kernel.Coordinates) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 1, requestedLines(),
		"Tverskaya 1", dest, order.PaymentCard, order.Contact{Name: "Ann", Phone: "+79990000000"}, "")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	dest, err := kernel.NewCoordinates(55.76, 37.62)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, 42, 1, requestedLines(), "  Tverskaya 1 ",
		&dest, order.PaymentCash, order.Contact{Name: "Ann"}, "ring twice")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, int64(42), cmd.UserID())
	assert.Equal(t, int64(1), cmd.RestaurantID())
	assert.Equal(t, "Tverskaya 1", cmd.Address())
	assert.Equal(t, &dest, cmd.Destination())
	assert.Equal(t, order.PaymentCash, cmd.PaymentMethod())
	assert.Equal(t, "ring twice", cmd.Comment())
	assert.Len(t, cmd.Lines(), 2)
	assert.Empty(t, cmd.IdempotencyKey())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, 42, 1, requestedLines(),
		"Tverskaya 1", nil, order.PaymentCard, order.Contact{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 1, nil,
		"Tverskaya 1", nil, order.PaymentCard, order.Contact{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLinesAreRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_QuantityOutOfRange(t *testing.T) {
	for _, qty := range []int{0, order.MaxLineQuantity + 1} {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 1,
			[]services.RequestedLine{{MenuItemID: 10, Quantity: qty}},
			"Tverskaya 1", nil, order.PaymentCard, order.Contact{}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 1, requestedLines(),
		"   ", nil, order.PaymentCard, order.Contact{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddressIsRequired)
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 0, 0, requestedLines(),
		"Tverskaya 1", nil, order.PaymentCard, order.Contact{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUserIDIsInvalid)
	assert.ErrorIs(t, err, commands.ErrRestaurantIsNotSet)
}

func TestNewCreateOrderCommand_UnknownPaymentMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 42, 1, requestedLines(),
		"Tverskaya 1", nil, order.PaymentMethod("barter"), order.Contact{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_WithIdempotencyKey(t *testing.T) {
	cmd := newCreateCmd(t, nil)

	keyed := cmd.WithIdempotencyKey("  abc  ")
	assert.Equal(t, "abc", keyed.IdempotencyKey())
	assert.Empty(t, cmd.IdempotencyKey())

	long := cmd.WithIdempotencyKey(strings.Repeat("k", 200))
	assert.Len(t, long.IdempotencyKey(), 128)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
