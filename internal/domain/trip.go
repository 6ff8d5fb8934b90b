// Package domain contains the core data types for the trip registry.
// It has no external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip is an offered journey with a capacity limit.
// Trips are reference data: this service only reads them.
type Trip struct {
	ID          int
	Name        string
	Description *string // nil when NULL in the store
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int

	// Countries holds the names of the countries the trip visits.
	// Populated by TripService.List only; never nil there.
	Countries []string
}

// TripCountry is one row of the trip ↔ country association, already joined
// with the country name.
type TripCountry struct {
	TripID      int
	CountryName string
}
