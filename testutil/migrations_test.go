package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/migrations"
	"github.com/tripline/backend/testutil"
)

// schemaTables lists every table the migrations create.
var schemaTables = []string{"client", "trip", "country", "client_trip", "country_trip"}

// TestMigrations round-trips the embedded migrations: down to zero, up to the
// latest version, and down again, checking the schema at each step. The repo
// package's TestMain may already have migrated this shared database, so the
// test starts by resetting it.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")
	requireTables(t, db, false)

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	require.Len(t, results, len(provider.ListSources()))
	requireTables(t, db, true)

	version, err := provider.GetDBVersion(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, version)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	requireTables(t, db, false)

	// Leave the schema in place for packages that run after this one.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "restore schema")
}

// requireTables checks that every schema table is present (or absent) in
// the public schema.
func requireTables(t *testing.T, db *sql.DB, present bool) {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`
	for _, table := range schemaTables {
		var exists bool
		require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists), "lookup %q", table)
		require.Equal(t, present, exists, "table %q", table)
	}
}
