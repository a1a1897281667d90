package postgres_test

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/palipractice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/palipractice-backend/internal/adapter/postgres/testhelper"
)

func TestMigrator_UpIsIdempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	m, err := postgres.NewMigrator(ctx, pool.Config().ConnString())
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	applied, err := m.Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied, "schema was already migrated by the test helper")

	status, err := m.Status(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, status)
	for _, st := range status {
		assert.Equal(t, goose.StateApplied, st.State, st.Source.Path)
	}
}
