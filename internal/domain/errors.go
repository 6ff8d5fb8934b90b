package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a blank required field).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrCapacityExceeded is returned when a trip already holds maxPeople
// registrations. Handlers should map this to HTTP 400.
var ErrCapacityExceeded = errors.New("max number of participants reached")

// ErrAlreadyRegistered is returned when the client already holds a
// registration for the trip. Handlers should map this to HTTP 409 Conflict.
var ErrAlreadyRegistered = errors.New("client is already registered for this trip")

// Specific not-found cases. Each wraps ErrNotFound, so errors.Is(err, ErrNotFound)
// holds for all of them; handlers use the specific value to pick a message.
var (
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrTripNotFound         = fmt.Errorf("trip %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
	ErrNoClientTrips        = fmt.Errorf("no trips for client: %w", ErrNotFound)
)
