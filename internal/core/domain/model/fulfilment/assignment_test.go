package fulfilment_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/fulfilment"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	t.Run("creates_assignment", func(t *testing.T) {
		id, storeID, productID := uuid.New(), uuid.New(), uuid.New()

		a, err := fulfilment.NewAssignment(id, storeID, productID, "MWH.001")

		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
		assert.Equal(t, storeID, a.StoreID())
		assert.Equal(t, productID, a.ProductID())
		assert.Equal(t, "MWH.001", a.WarehouseBusinessUnit())
	})

	t.Run("rejects_missing_legs", func(t *testing.T) {
		tests := []struct {
			name      string
			id        uuid.UUID
			storeID   uuid.UUID
			productID uuid.UUID
			warehouse string
		}{
			{"nil id", uuid.Nil, uuid.New(), uuid.New(), "MWH.001"},
			{"nil store", uuid.New(), uuid.Nil, uuid.New(), "MWH.001"},
			{"nil product", uuid.New(), uuid.New(), uuid.Nil, "MWH.001"},
			{"blank warehouse", uuid.New(), uuid.New(), uuid.New(), " "},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := fulfilment.NewAssignment(tc.id, tc.storeID, tc.productID, tc.warehouse)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestAssignment_Matches(t *testing.T) {
	storeID, productID := uuid.New(), uuid.New()
	a, err := fulfilment.NewAssignment(uuid.New(), storeID, productID, "MWH.001")
	require.NoError(t, err)

	assert.True(t, a.Matches(storeID, productID, "MWH.001"))
	assert.False(t, a.Matches(storeID, productID, "MWH.002"))
	assert.False(t, a.Matches(uuid.New(), productID, "MWH.001"))
	assert.False(t, a.Matches(storeID, uuid.New(), "MWH.001"))
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var a fulfilment.Assignment
		require.ErrorIs(t, a.Validate(), fulfilment.ErrAssignmentIsNotConstructed)
	})
}
