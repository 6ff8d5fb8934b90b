// Package service contains the business logic for the trip registry.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
)

// TripService implements the read side of trips.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// List returns every trip with the names of the countries it visits.
// Always returns a non-nil slice, and every trip has a non-nil Countries slice.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	pairs, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}

	byTrip := make(map[int][]string, len(trips))
	for _, p := range pairs {
		byTrip[p.TripID] = append(byTrip[p.TripID], p.CountryName)
	}

	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		t.Countries = byTrip[t.ID]
		if t.Countries == nil {
			t.Countries = []string{}
		}
		out = append(out, t)
	}
	return out, nil
}
