package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
)

// RegistrationService implements the client ↔ trip registration workflow.
// Register runs inside one transaction so the capacity check and the insert
// see the same state; the other operations are single statements.
type RegistrationService struct {
	tx            repo.TxRunner
	clients       repo.ClientRepo
	registrations repo.RegistrationRepo
	now           func() time.Time
}

// NewRegistrationService constructs a RegistrationService.
// clients and registrations serve the read paths; tx serves Register.
func NewRegistrationService(tx repo.TxRunner, clients repo.ClientRepo, registrations repo.RegistrationRepo) *RegistrationService {
	return &RegistrationService{
		tx:            tx,
		clients:       clients,
		registrations: registrations,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Register signs the client up for the trip.
//
// Checks run top to bottom and stop at the first failure:
//   - domain.ErrClientNotFound if the client does not exist,
//   - domain.ErrTripNotFound if the trip does not exist,
//   - domain.ErrAlreadyRegistered if the pair is already registered,
//   - domain.ErrCapacityExceeded if the trip holds maxPeople registrations.
//
// The trip row stays locked from the capacity read until commit, so two
// concurrent registrations for the last seat cannot both succeed.
func (s *RegistrationService) Register(ctx context.Context, clientID, tripID int) (domain.Registration, error) {
	var reg domain.Registration

	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		exists, err := r.Clients.Exists(ctx, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrClientNotFound
		}

		maxPeople, err := r.Trips.MaxPeople(ctx, tripID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrTripNotFound
			}
			return err
		}

		registered, err := r.Registrations.Exists(ctx, clientID, tripID)
		if err != nil {
			return err
		}
		if registered {
			return domain.ErrAlreadyRegistered
		}

		count, err := r.Registrations.CountByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if count >= maxPeople {
			return domain.ErrCapacityExceeded
		}

		reg = domain.Registration{ClientID: clientID, TripID: tripID, RegisteredAt: s.now()}
		return r.Registrations.Create(ctx, reg)
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("service.RegistrationService.Register: %w", err)
	}
	return reg, nil
}

// Unregister removes the client's registration for the trip.
// Returns domain.ErrRegistrationNotFound if there is nothing to remove.
func (s *RegistrationService) Unregister(ctx context.Context, clientID, tripID int) error {
	err := s.registrations.Delete(ctx, clientID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("service.RegistrationService.Unregister: %w", domain.ErrRegistrationNotFound)
		}
		return fmt.Errorf("service.RegistrationService.Unregister: %w", err)
	}
	return nil
}

// ListByClient returns the trips the client is registered for.
// Returns domain.ErrClientNotFound for an unknown client and
// domain.ErrNoClientTrips when the client exists but has no registrations.
func (s *RegistrationService) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.RegistrationService.ListByClient: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("service.RegistrationService.ListByClient: %w", domain.ErrClientNotFound)
	}

	trips, err := s.registrations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.RegistrationService.ListByClient: %w", err)
	}
	if len(trips) == 0 {
		return nil, fmt.Errorf("service.RegistrationService.ListByClient: %w", domain.ErrNoClientTrips)
	}
	return trips, nil
}
