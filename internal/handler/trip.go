package handler

import (
	"context"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/handler/gen"
)

// ListTrips handles GET /trips.
// Returns every trip with its countries; an empty store yields [].
func (s *Server) ListTrips(ctx context.Context, _ gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListTrips200JSONResponse, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out, nil
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
// Countries is always serialized as an array, never null.
func tripToResponse(t domain.Trip) gen.Trip {
	countries := t.Countries
	if countries == nil {
		countries = []string{}
	}
	return gen.Trip{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		DateFrom:    t.DateFrom,
		DateTo:      t.DateTo,
		MaxPeople:   t.MaxPeople,
		Countries:   countries,
	}
}
