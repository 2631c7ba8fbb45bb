package queries_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllStoresQuery_Valid(t *testing.T) {
	query := queries.NewGetAllStoresQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllStoresQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllStoresQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllStoresQueryIsNotConstructed)
}
