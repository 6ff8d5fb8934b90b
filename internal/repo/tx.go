package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repos bundles the repositories bound to a single connection or transaction.
type Repos struct {
	Clients       ClientRepo
	Trips         TripRepo
	Registrations RegistrationRepo
}

// NewRepos builds all repositories on top of db.
func NewRepos(db db) Repos {
	return Repos{
		Clients:       NewClientRepo(db),
		Trips:         NewTripRepo(db),
		Registrations: NewRegistrationRepo(db),
	}
}

// TxRunner runs a unit of work inside one database transaction.
// The transaction commits when fn returns nil and rolls back when fn returns
// an error or panics. fn's error is returned unchanged (wrapped).
type TxRunner interface {
	InTx(ctx context.Context, fn func(Repos) error) error
}

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// Beginning on a pgx.Tx opens a savepoint, so tests can run a TxRunner inside
// their own rolled-back transaction.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// pgTxRunner is the Postgres implementation of TxRunner.
type pgTxRunner struct {
	db beginner
}

// NewTxRunner constructs a TxRunner that begins transactions on db.
func NewTxRunner(db beginner) TxRunner {
	return &pgTxRunner{db: db}
}

func (r *pgTxRunner) InTx(ctx context.Context, fn func(Repos) error) error {
	// pgx.BeginFunc rolls back on error or panic and commits otherwise.
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: %w", err)
	}
	return nil
}
