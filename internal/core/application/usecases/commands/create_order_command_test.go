package commands_test

import (
	"testing"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "ORD-001", "Shopping Bags 12x16", 5000, "D-Cut", stage.Flexo)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "ORD-001", cmd.OrderNumber())
	assert.Equal(t, "Shopping Bags 12x16", cmd.JobName())
	assert.Equal(t, 5000, cmd.Quantity())
	assert.Equal(t, "D-Cut", cmd.BagType())
	assert.Equal(t, stage.Flexo, cmd.Stage())
}

func TestNewCreateOrderCommand_BagTypeIsOptional(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-001", "Printing Job", 100, "", stage.Flexo)
	require.NoError(t, err)
	assert.Empty(t, cmd.BagType())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "ORD-001", "Job", 100, "", stage.Flexo)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "Job", 100, "", stage.Flexo)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
}

func TestNewCreateOrderCommand_EmptyJobName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-001", "", 100, "", stage.Flexo)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrJobNameIsRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-001", "Job", 0, "", stage.Flexo)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewCreateOrderCommand_InvalidStage(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-001", "Job", 100, "", stage.Unknown)
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
