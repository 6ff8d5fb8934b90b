package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripline/backend/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// Create inserts a new client and returns its database-generated ID.
	// No uniqueness is enforced on email or pesel.
	Create(ctx context.Context, client domain.Client) (int, error)

	// Exists reports whether a client with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (int, error) {
	const q = `
		INSERT INTO client (first_name, last_name, email, telephone, pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		RETURNING id_client`

	args := pgx.NamedArgs{
		"first_name": client.FirstName,
		"last_name":  client.LastName,
		"email":      client.Email,
		"telephone":  client.Telephone,
		"pesel":      client.Pesel,
	}

	var id int
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return id, nil
}

func (r *pgClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM client WHERE id_client = @id)`

	if !fitsInt4(id) {
		return false, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ClientRepo.Exists: %w", err)
	}
	return exists, nil
}
