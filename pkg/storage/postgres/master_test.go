package postgres_test

import (
	"context"
	"secondchance/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Master(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()

		v, err := pgSQL.MasterByURL(ctx, "missing.example")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("upsert inserts then overwrites", func(t *testing.T) {
		t.Parallel()

		URL := "upsert.example"
		require.NoError(t, pgSQL.UpsertMaster(ctx, URL, 12, false))

		v, err := pgSQL.MasterByURL(ctx, URL)
		require.NoError(t, err)
		require.Equal(t, &domain.Verdict{URL: URL, Score: 12, Safe: false, Success: true}, v)

		require.NoError(t, pgSQL.UpsertMaster(ctx, URL, 99, true))
		require.NoError(t, pgSQL.UpsertMaster(ctx, URL, 99, true))

		v, err = pgSQL.MasterByURL(ctx, URL)
		require.NoError(t, err)
		require.Equal(t, 99, v.Score)
		require.True(t, v.Safe)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, pgSQL.UpsertMaster(ctx, "exact.example", 98, true))

		v, err := pgSQL.MasterByURL(ctx, "EXACT.example")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("force safe existing", func(t *testing.T) {
		t.Parallel()

		URL := "flagged.example"
		require.NoError(t, pgSQL.UpsertMaster(ctx, URL, 40, false))
		require.NoError(t, pgSQL.ForceSafe(ctx, URL))

		v, err := pgSQL.MasterByURL(ctx, URL)
		require.NoError(t, err)
		require.Equal(t, domain.OverrideScore, v.Score)
		require.True(t, v.Safe)
	})

	t.Run("force safe creates row", func(t *testing.T) {
		t.Parallel()

		URL := "unknown.example"
		require.NoError(t, pgSQL.ForceSafe(ctx, URL))

		v, err := pgSQL.MasterByURL(ctx, URL)
		require.NoError(t, err)
		require.Equal(t, &domain.Verdict{URL: URL, Score: domain.OverrideScore, Safe: true, Success: true}, v)
	})
}
