package commands_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWarehouseCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", 100, 10)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, "MWH.001", cmd.BusinessUnitCode())
	assert.Equal(t, "ZWOLLE-001", cmd.Location())
	assert.Equal(t, 100, cmd.Capacity())
	assert.Equal(t, 10, cmd.Stock())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateWarehouseCommand_StockBoundaries(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		stock    int
	}{
		{name: "empty warehouse", capacity: 50, stock: 0},
		{name: "full warehouse", capacity: 50, stock: 50},
		{name: "capacity of one", capacity: 1, stock: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", tc.capacity, tc.stock)

			require.NoError(t, err)
			assert.Equal(t, tc.capacity, cmd.Capacity())
			assert.Equal(t, tc.stock, cmd.Stock())
		})
	}
}

func TestNewCreateWarehouseCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name             string
		businessUnitCode string
		location         string
		capacity         int
		stock            int
		wantInError      string
	}{
		{
			name:        "empty business unit code",
			location:    "ZWOLLE-001",
			capacity:    10,
			stock:       0,
			wantInError: "businessUnitCode",
		},
		{
			name:             "blank business unit code",
			businessUnitCode: "   ",
			location:         "ZWOLLE-001",
			capacity:         10,
			stock:            0,
			wantInError:      "businessUnitCode",
		},
		{
			name:             "empty location",
			businessUnitCode: "MWH.001",
			capacity:         10,
			stock:            0,
			wantInError:      "location",
		},
		{
			name:             "zero capacity",
			businessUnitCode: "MWH.001",
			location:         "ZWOLLE-001",
			capacity:         0,
			stock:            0,
			wantInError:      "capacity",
		},
		{
			name:             "negative capacity",
			businessUnitCode: "MWH.001",
			location:         "ZWOLLE-001",
			capacity:         -5,
			stock:            0,
			wantInError:      "capacity",
		},
		{
			name:             "negative stock",
			businessUnitCode: "MWH.001",
			location:         "ZWOLLE-001",
			capacity:         10,
			stock:            -1,
			wantInError:      "stock",
		},
		{
			name:             "stock above capacity",
			businessUnitCode: "MWH.001",
			location:         "ZWOLLE-001",
			capacity:         10,
			stock:            11,
			wantInError:      "stock",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateWarehouseCommand(tc.businessUnitCode, tc.location, tc.capacity, tc.stock)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantInError)
			assert.Zero(t, cmd)
		})
	}
}

func TestNewCreateWarehouseCommand_AggregatesFieldErrors(t *testing.T) {
	_, err := commands.NewCreateWarehouseCommand("", "", 0, -1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "businessUnitCode")
	assert.Contains(t, err.Error(), "location")
	assert.Contains(t, err.Error(), "capacity")
	assert.Contains(t, err.Error(), "stock")
}

func TestCreateWarehouseCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CreateWarehouseCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateWarehouseCommandIsNotConstructed)
}
