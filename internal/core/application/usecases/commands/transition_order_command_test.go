package commands_test

import (
	"testing"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(orderID, order.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.StatusConfirmed, cmd.Status())
}

func TestNewTransitionOrderCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Status("shipped"))
	require.Error(t, err)
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.StatusConfirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestTransitionOrderCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.TransitionOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
}
