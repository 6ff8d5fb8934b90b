package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/handler/gen"
)

const (
	msgRegistered   = "Client registered to trip successfully"
	msgUnregistered = "Client unregistered from trip successfully"
)

// CreateClient handles POST /clients.
// Responds 201 with the new id and a Location pointing at the client's trips.
func (s *Server) CreateClient(ctx context.Context, req gen.CreateClientRequestObject) (gen.CreateClientResponseObject, error) {
	if req.Body == nil {
		return gen.CreateClient400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(requestBody("request body is required"))}, nil
	}

	id, err := s.clients.Create(ctx, domain.Client{
		FirstName: req.Body.FirstName,
		LastName:  req.Body.LastName,
		Email:     req.Body.Email,
		Telephone: req.Body.Telephone,
		Pesel:     req.Body.Pesel,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateClient400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}

	return gen.CreateClient201JSONResponse{
		Body:    gen.CreateClientResponse{ClientId: id},
		Headers: gen.CreateClient201ResponseHeaders{Location: fmt.Sprintf("/clients/%d/trips", id)},
	}, nil
}

// ListClientTrips handles GET /clients/{id}/trips.
// A client without registrations is answered with 404, like an unknown client.
func (s *Server) ListClientTrips(ctx context.Context, req gen.ListClientTripsRequestObject) (gen.ListClientTripsResponseObject, error) {
	trips, err := s.registrations.ListByClient(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListClientTrips404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody(notFoundMessage(err)))}, nil
		}
		return nil, err
	}

	out := make(gen.ListClientTrips200JSONResponse, len(trips))
	for i, ct := range trips {
		out[i] = clientTripToResponse(ct)
	}
	return out, nil
}

// RegisterClientToTrip handles PUT /clients/{id}/trips/{tripId}.
func (s *Server) RegisterClientToTrip(ctx context.Context, req gen.RegisterClientToTripRequestObject) (gen.RegisterClientToTripResponseObject, error) {
	_, err := s.registrations.Register(ctx, req.Id, req.TripId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.RegisterClientToTrip404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody(notFoundMessage(err)))}, nil
		case errors.Is(err, domain.ErrCapacityExceeded):
			body := errorBody(codeCapacityExceeded, "Max number of participants reached")
			return gen.RegisterClientToTrip400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(body)}, nil
		case errors.Is(err, domain.ErrAlreadyRegistered):
			body := errorBody(codeConflict, "Client is already registered for this trip")
			return gen.RegisterClientToTrip409JSONResponse{ConflictJSONResponse: gen.ConflictJSONResponse(body)}, nil
		}
		return nil, err
	}

	return gen.RegisterClientToTrip200TextResponse(msgRegistered), nil
}

// UnregisterClientFromTrip handles DELETE /clients/{id}/trips/{tripId}.
func (s *Server) UnregisterClientFromTrip(ctx context.Context, req gen.UnregisterClientFromTripRequestObject) (gen.UnregisterClientFromTripResponseObject, error) {
	if err := s.registrations.Unregister(ctx, req.Id, req.TripId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UnregisterClientFromTrip404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody(notFoundMessage(err)))}, nil
		}
		return nil, err
	}

	return gen.UnregisterClientFromTrip200TextResponse(msgUnregistered), nil
}

// clientTripToResponse converts a domain.ClientTrip into the generated gen.ClientTrip.
func clientTripToResponse(ct domain.ClientTrip) gen.ClientTrip {
	return gen.ClientTrip{
		Id:           ct.ID,
		Name:         ct.Name,
		Description:  ct.Description,
		DateFrom:     ct.DateFrom,
		DateTo:       ct.DateTo,
		MaxPeople:    ct.MaxPeople,
		RegisteredAt: ct.RegisteredAt,
	}
}
