package repo_test

import (
	"context"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
)

// unreachableDB fails the test on any statement. Ids outside the INTEGER
// range must be answered without touching the store.
type unreachableDB struct{ t *testing.T }

func (d unreachableDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	d.t.Fatal("unexpected Exec")
	return pgconn.CommandTag{}, nil
}
func (d unreachableDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	d.t.Fatal("unexpected Query")
	return nil, nil
}
func (d unreachableDB) QueryRow(context.Context, string, ...any) pgx.Row {
	d.t.Fatal("unexpected QueryRow")
	return nil
}

func TestRepos_idsBeyondInt4(t *testing.T) {
	ctx := context.Background()
	big := math.MaxInt32 + 1
	small := math.MinInt32 - 1
	repos := repo.NewRepos(unreachableDB{t})

	for _, id := range []int{big, small, 9999999999} {
		ok, err := repos.Clients.Exists(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = repos.Trips.MaxPeople(ctx, id)
		require.ErrorIs(t, err, domain.ErrNotFound)

		ok, err = repos.Registrations.Exists(ctx, 1, id)
		require.NoError(t, err)
		assert.False(t, ok)

		n, err := repos.Registrations.CountByTrip(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, n)

		err = repos.Registrations.Delete(ctx, id, 1)
		require.ErrorIs(t, err, domain.ErrNotFound)

		trips, err := repos.Registrations.ListByClient(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, trips)
		assert.Empty(t, trips)

		err = repos.Registrations.Create(ctx, domain.Registration{ClientID: 1, TripID: id})
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
}
