// Package testutil provides shared helpers for integration tests.
// Helpers skip automatically when TEST_DATABASE_URL is not set, so unit tests
// run without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

// NewPool opens a *pgxpool.Pool connected to TEST_DATABASE_URL.
// The test is skipped if the variable is not set; the pool is closed when
// the test and its subtests finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction on a fresh test pool and rolls it back when the
// test finishes. Everything written through it disappears afterwards, so
// tests need no cleanup SQL.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	pool := NewPool(t)
	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB opens a *sql.DB on TEST_DATABASE_URL using the pgx database/sql
// driver, for goose. Closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for dsn and panics on any error.
// For TestMain, where no *testing.T exists. Callers close the result.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// Execer is satisfied by pgx.Tx, *pgx.Conn and *pgxpool.Pool.
type Execer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// InsertTrip inserts a trip with the given capacity and returns its id.
// Trips are reference data with no write path in the app, so tests seed
// them directly.
func InsertTrip(t *testing.T, db Execer, name string, maxPeople int) int {
	t.Helper()

	const q = `
		INSERT INTO trip (name, description, date_from, date_to, max_people)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_trip`

	from := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	var id int
	err := db.QueryRow(context.Background(), q, name, name+" description", from, from.AddDate(0, 0, 10), maxPeople).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertTrip: %v", err)
	}
	return id
}

// InsertCountry inserts a country and returns its id.
func InsertCountry(t *testing.T, db Execer, name string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `INSERT INTO country (name) VALUES ($1) RETURNING id_country`, name).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertCountry: %v", err)
	}
	return id
}

// LinkCountry associates a country with a trip.
func LinkCountry(t *testing.T, db Execer, tripID, countryID int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `INSERT INTO country_trip (id_country, id_trip) VALUES ($1, $2)`, countryID, tripID)
	if err != nil {
		t.Fatalf("testutil.LinkCountry: %v", err)
	}
}

// requireDSN returns TEST_DATABASE_URL, skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
