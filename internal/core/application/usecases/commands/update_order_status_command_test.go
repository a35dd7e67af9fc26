package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(id, 42, order.Confirmed)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, int64(42), cmd.UserID())
	assert.Equal(t, order.Confirmed, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, 0, order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrUserIDIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

func TestNewCancelOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(id, 42)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, int64(42), cmd.UserID())

	_, err = commands.NewCancelOrderCommand(id, -1)
	require.ErrorIs(t, err, commands.ErrUserIDIsInvalid)

	require.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}

func TestNewProcessLoyaltyCreditsCommand(t *testing.T) {
	cmd, err := commands.NewProcessLoyaltyCreditsCommand(commands.DefaultLoyaltyBatchSize)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())

	for _, n := range []int{0, 501} {
		_, err = commands.NewProcessLoyaltyCreditsCommand(n)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	require.ErrorIs(t, commands.ProcessLoyaltyCreditsCommand{}.Validate(),
		commands.ErrProcessLoyaltyCreditsCommandIsNotConstructed)
}
