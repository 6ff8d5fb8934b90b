package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripline/backend/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique/primary key conflict.
const uniqueViolation = "23505"

// RegistrationRepo defines the persistence operations for the client_trip
// association.
type RegistrationRepo interface {
	// Create inserts a registration row.
	// Returns domain.ErrAlreadyRegistered if the (client, trip) pair exists
	// and domain.ErrNotFound if either id is outside the key range.
	Create(ctx context.Context, reg domain.Registration) error

	// Exists reports whether the client is registered for the trip.
	Exists(ctx context.Context, clientID, tripID int) (bool, error)

	// CountByTrip returns the number of registrations for the trip.
	CountByTrip(ctx context.Context, tripID int) (int, error)

	// Delete removes the client's registration for the trip.
	// Returns domain.ErrNotFound if no such registration exists.
	Delete(ctx context.Context, clientID, tripID int) error

	// ListByClient returns the trips the client is registered for, together
	// with the registration timestamp, ordered by registered_at.
	ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// pgRegistrationRepo is the Postgres implementation of RegistrationRepo.
type pgRegistrationRepo struct {
	db db
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db) RegistrationRepo {
	return &pgRegistrationRepo{db: db}
}

func (r *pgRegistrationRepo) Create(ctx context.Context, reg domain.Registration) error {
	const q = `
		INSERT INTO client_trip (id_client, id_trip, registered_at)
		VALUES (@client_id, @trip_id, @registered_at)`

	if !fitsInt4(reg.ClientID, reg.TripID) {
		return fmt.Errorf("repo.RegistrationRepo.Create: %w", domain.ErrNotFound)
	}

	args := pgx.NamedArgs{
		"client_id":     reg.ClientID,
		"trip_id":       reg.TripID,
		"registered_at": reg.RegisteredAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("repo.RegistrationRepo.Create: %w", domain.ErrAlreadyRegistered)
		}
		return fmt.Errorf("repo.RegistrationRepo.Create: %w", err)
	}
	return nil
}

func (r *pgRegistrationRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM client_trip
			WHERE id_client = @client_id AND id_trip = @trip_id
		)`

	if !fitsInt4(clientID, tripID) {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.RegistrationRepo.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgRegistrationRepo) CountByTrip(ctx context.Context, tripID int) (int, error) {
	const q = `SELECT COUNT(*) FROM client_trip WHERE id_trip = @trip_id`

	if !fitsInt4(tripID) {
		return 0, nil
	}

	var n int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.RegistrationRepo.CountByTrip: %w", err)
	}
	return n, nil
}

func (r *pgRegistrationRepo) Delete(ctx context.Context, clientID, tripID int) error {
	const q = `DELETE FROM client_trip WHERE id_client = @client_id AND id_trip = @trip_id`

	if !fitsInt4(clientID, tripID) {
		return fmt.Errorf("repo.RegistrationRepo.Delete: %w", domain.ErrNotFound)
	}

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.RegistrationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RegistrationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgRegistrationRepo) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	const q = `
		SELECT t.id_trip, t.name, t.description, t.date_from, t.date_to, t.max_people,
		       ct.registered_at
		FROM trip t
		INNER JOIN client_trip ct ON ct.id_trip = t.id_trip
		WHERE ct.id_client = @client_id
		ORDER BY ct.registered_at, t.id_trip`

	if !fitsInt4(clientID) {
		return []domain.ClientTrip{}, nil
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: %w", err)
	}
	defer rows.Close()

	out := []domain.ClientTrip{}
	for rows.Next() {
		var ct domain.ClientTrip
		trip, err := scanTrip(rows, &ct.RegisteredAt)
		if err != nil {
			return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: scan: %w", err)
		}
		ct.Trip = trip
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: rows: %w", err)
	}
	return out, nil
}
