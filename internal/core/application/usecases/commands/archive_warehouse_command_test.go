package commands_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArchiveWarehouseCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.001")

	require.NoError(t, err)
	assert.Equal(t, "MWH.001", cmd.BusinessUnitCode())
	assert.NoError(t, cmd.Validate())
}

func TestNewArchiveWarehouseCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name             string
		businessUnitCode string
	}{
		{name: "empty code"},
		{name: "blank code", businessUnitCode: "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewArchiveWarehouseCommand(tc.businessUnitCode)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "businessUnitCode")
			assert.Zero(t, cmd)
		})
	}
}

func TestArchiveWarehouseCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.ArchiveWarehouseCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrArchiveWarehouseCommandIsNotConstructed)
}
