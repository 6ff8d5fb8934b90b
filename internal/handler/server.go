// Package handler implements the HTTP handlers for the trip registry API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, client.go, trip.go) but
// share the same Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config gen/cfg.yaml ../../spec/openapi.yaml

import (
	"context"

	"github.com/tripline/backend/internal/domain"
)

// ClientServicer defines the client operations the handlers depend on.
// Interfaces live here, in the consumer package, so handler tests can inject
// mocks without a database or service layer.
type ClientServicer interface {
	Create(ctx context.Context, client domain.Client) (int, error)
}

// RegistrationServicer defines the registration workflow the handlers depend on.
type RegistrationServicer interface {
	Register(ctx context.Context, clientID, tripID int) (domain.Registration, error)
	Unregister(ctx context.Context, clientID, tripID int) error
	ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it through NewHTTPHandler.
type Server struct {
	clients       ClientServicer
	registrations RegistrationServicer
	trips         TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(clients ClientServicer, registrations RegistrationServicer, trips TripServicer) *Server {
	return &Server{clients: clients, registrations: registrations, trips: trips}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
