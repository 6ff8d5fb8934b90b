package domain

import "time"

// Registration records that a client signed up for a trip.
// The pair (ClientID, TripID) is unique.
type Registration struct {
	ClientID     int
	TripID       int
	RegisteredAt time.Time
}

// ClientTrip is a trip as seen from one client's registrations:
// the trip fields plus the moment the client registered.
// Countries is left empty.
type ClientTrip struct {
	Trip
	RegisteredAt time.Time
}
