package service

import "time"

// SetClock replaces the clock Register stamps registrations with.
func SetClock(s *RegistrationService, now func() time.Time) {
	s.now = now
}
