package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
	"github.com/tripline/backend/internal/service"
)

// mockClientRepo is a hand-written test double for repo.ClientRepo.
type mockClientRepo struct {
	create func(ctx context.Context, client domain.Client) (int, error)
	exists func(ctx context.Context, id int) (bool, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client domain.Client) (int, error) {
	return m.create(ctx, client)
}
func (m *mockClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	return m.exists(ctx, id)
}

var _ repo.ClientRepo = (*mockClientRepo)(nil)

func validClient() domain.Client {
	return domain.Client{
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna.nowak@example.com",
		Telephone: "+48 501 222 333",
		Pesel:     "85020254321",
	}
}

func TestClientService_Create_Valid(t *testing.T) {
	var stored domain.Client
	svc := service.NewClientService(&mockClientRepo{
		create: func(_ context.Context, c domain.Client) (int, error) {
			stored = c
			return 7, nil
		},
	})

	id, err := svc.Create(context.Background(), validClient())

	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, validClient(), stored)
}

// TestClientService_Create_BlankFields verifies that empty and
// whitespace-only fields are rejected before the repo is called, and that
// the message names each offending field by its JSON name.
func TestClientService_Create_BlankFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Client)
		message string
	}{
		{
			name:    "empty first name",
			mutate:  func(c *domain.Client) { c.FirstName = "" },
			message: "firstName is required",
		},
		{
			name:    "whitespace pesel",
			mutate:  func(c *domain.Client) { c.Pesel = "   " },
			message: "pesel is required",
		},
		{
			name: "several blank",
			mutate: func(c *domain.Client) {
				c.LastName = ""
				c.Email = "\t"
				c.Telephone = ""
			},
			message: "lastName, email, telephone are required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewClientService(&mockClientRepo{
				create: func(context.Context, domain.Client) (int, error) {
					t.Fatal("repo must not be called for invalid input")
					return 0, nil
				},
			})
			c := validClient()
			tc.mutate(&c)

			_, err := svc.Create(context.Background(), c)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestClientService_Create_RepoError(t *testing.T) {
	boom := errors.New("insert failed")
	svc := service.NewClientService(&mockClientRepo{
		create: func(context.Context, domain.Client) (int, error) { return 0, boom },
	})

	_, err := svc.Create(context.Background(), validClient())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
