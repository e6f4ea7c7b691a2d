package queries_test

import (
	"testing"

	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPrintJobQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetPrintJobQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.JobID())
}

func TestNewGetPrintJobQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetPrintJobQuery(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
