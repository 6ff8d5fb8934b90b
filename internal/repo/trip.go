// Package repo contains all database access logic for the trip registry.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripline/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting it instead of *pgxpool.Pool lets the same repo run standalone,
// inside a TxRunner transaction, or inside a test transaction that is rolled
// back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the read operations on trips and their countries.
// Trips are reference data; there is no write path.
type TripRepo interface {
	// MaxPeople returns the capacity of the trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	// The trip row is selected FOR UPDATE: inside a transaction it stays
	// locked until commit, which serializes concurrent registrations.
	MaxPeople(ctx context.Context, id int) (int, error)

	// List returns all trips ordered by id. Countries is left nil.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListCountries returns every trip ↔ country pair, ordered by trip id
	// and country name.
	ListCountries(ctx context.Context) ([]domain.TripCountry, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) MaxPeople(ctx context.Context, id int) (int, error) {
	const q = `
		SELECT max_people
		FROM trip
		WHERE id_trip = @id
		FOR UPDATE`

	if !fitsInt4(id) {
		return 0, fmt.Errorf("repo.TripRepo.MaxPeople: %w", domain.ErrNotFound)
	}

	var maxPeople int
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&maxPeople)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("repo.TripRepo.MaxPeople: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("repo.TripRepo.MaxPeople: %w", err)
	}
	return maxPeople, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT id_trip, name, description, date_from, date_to, max_people
		FROM trip
		ORDER BY id_trip`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	return trips, nil
}

// ListCountries replaces a store-side string aggregation with a plain join;
// the service groups the pairs by trip.
func (r *pgTripRepo) ListCountries(ctx context.Context) ([]domain.TripCountry, error) {
	const q = `
		SELECT ct.id_trip, c.name
		FROM country_trip ct
		INNER JOIN country c ON c.id_country = ct.id_country
		ORDER BY ct.id_trip, c.name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListCountries: %w", err)
	}
	defer rows.Close()

	pairs := []domain.TripCountry{}
	for rows.Next() {
		var tc domain.TripCountry
		if err := rows.Scan(&tc.TripID, &tc.CountryName); err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListCountries: scan: %w", err)
		}
		pairs = append(pairs, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListCountries: rows: %w", err)
	}
	return pairs, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps the six trip columns (in table order) into a domain.Trip.
// Extra destinations are appended after them, which lets the client-trips
// join reuse it for registered_at.
func scanTrip(s scanner, extra ...any) (domain.Trip, error) {
	var (
		t    domain.Trip
		desc pgtype.Text
	)

	dest := append([]any{&t.ID, &t.Name, &desc, &t.DateFrom, &t.DateTo, &t.MaxPeople}, extra...)
	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	if desc.Valid {
		t.Description = &desc.String
	}
	return t, nil
}
