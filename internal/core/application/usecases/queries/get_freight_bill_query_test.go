package queries_test

import (
	"testing"

	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFreightBillQuery_Valid(t *testing.T) {
	query, err := queries.NewGetFreightBillQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetFreightBillQuery_EmptyBillID(t *testing.T) {
	_, err := queries.NewGetFreightBillQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetConsignmentQuery_Valid(t *testing.T) {
	query, err := queries.NewGetConsignmentQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetConsignmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetConsignmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetConsignmentQueryIsNotConstructed)
}
