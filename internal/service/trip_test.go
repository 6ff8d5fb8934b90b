package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
	"github.com/tripline/backend/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	maxPeople     func(ctx context.Context, id int) (int, error)
	list          func(ctx context.Context) ([]domain.Trip, error)
	listCountries func(ctx context.Context) ([]domain.TripCountry, error)
}

func (m *mockTripRepo) MaxPeople(ctx context.Context, id int) (int, error) {
	return m.maxPeople(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListCountries(ctx context.Context) ([]domain.TripCountry, error) {
	return m.listCountries(ctx)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func tripFixture(id int, name string) domain.Trip {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        id,
		Name:      name,
		DateFrom:  from,
		DateTo:    from.AddDate(0, 0, 7),
		MaxPeople: 10,
	}
}

func tripsRepo(trips []domain.Trip, pairs []domain.TripCountry) *mockTripRepo {
	return &mockTripRepo{
		list:          func(context.Context) ([]domain.Trip, error) { return trips, nil },
		listCountries: func(context.Context) ([]domain.TripCountry, error) { return pairs, nil },
	}
}

// ---- List ------------------------------------------------------------------

func TestTripService_List_GroupsCountries(t *testing.T) {
	svc := service.NewTripService(tripsRepo(
		[]domain.Trip{tripFixture(1, "Alps"), tripFixture(2, "Baltics"), tripFixture(3, "Home")},
		[]domain.TripCountry{
			{TripID: 1, CountryName: "Austria"},
			{TripID: 1, CountryName: "Switzerland"},
			{TripID: 2, CountryName: "Estonia"},
		},
	))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Alps", got[0].Name)
	assert.Equal(t, []string{"Austria", "Switzerland"}, got[0].Countries)
	assert.Equal(t, []string{"Estonia"}, got[1].Countries)
	require.NotNil(t, got[2].Countries, "trips without countries get an empty list")
	assert.Empty(t, got[2].Countries)
}

// TestTripService_List_IgnoresOrphanPairs verifies that a pair pointing at a
// trip missing from the list is dropped rather than invented.
func TestTripService_List_IgnoresOrphanPairs(t *testing.T) {
	svc := service.NewTripService(tripsRepo(
		[]domain.Trip{tripFixture(1, "Alps")},
		[]domain.TripCountry{{TripID: 99, CountryName: "Atlantis"}},
	))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Countries)
}

func TestTripService_List_Empty(t *testing.T) {
	svc := service.NewTripService(tripsRepo([]domain.Trip{}, []domain.TripCountry{}))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_RepoError(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name string
		repo *mockTripRepo
	}{
		{
			name: "list fails",
			repo: &mockTripRepo{list: func(context.Context) ([]domain.Trip, error) { return nil, boom }},
		},
		{
			name: "countries fail",
			repo: &mockTripRepo{
				list:          func(context.Context) ([]domain.Trip, error) { return []domain.Trip{tripFixture(1, "Alps")}, nil },
				listCountries: func(context.Context) ([]domain.TripCountry, error) { return nil, boom },
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.NewTripService(tc.repo).List(context.Background())
			require.ErrorIs(t, err, boom)
		})
	}
}
