// Package migrations embeds the SQL migration files so they can be applied
// by the goose programmatic API in tests and, optionally, at server start.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Apply runs every pending migration against db and returns the number of
// migrations that were applied. Already-applied versions are skipped.
func Apply(ctx context.Context, db *sql.DB) (int, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return 0, fmt.Errorf("migrations.Apply: create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations.Apply: up: %w", err)
	}
	return len(results), nil
}
