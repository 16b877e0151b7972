package domain

import "time"

// Default working-hours policy
const (
	DefaultOpenHour    = 10
	DefaultCloseHour   = 21
	DefaultSlotMinutes = 30
	DefaultHorizonDays = 7
)

// Booking outcomes recorded in the journal and metrics
const (
	OutcomeBooked        = "booked"
	OutcomeConflict      = "conflict"
	OutcomeNoTime        = "no_time_selected"
	OutcomeAuthRequired  = "auth_required"
	OutcomeInvalidSlot   = "invalid_slot"
	OutcomeUnavailable   = "doctor_unavailable"
	OutcomeBackendFailed = "backend_failed"
)

// DateFormat is used for human-readable dates in API responses
const DateFormat = "2006-01-02"

// Session is the caller's authenticated context.
// The token is opaque to this service; only the clinic backend validates it.
type Session struct {
	Token     string
	ExpiresAt *time.Time // nil = unknown expiry
}

// IsAuthenticated returns true if the session has a token that is not known to be expired
func (s Session) IsAuthenticated(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	if s.ExpiresAt != nil && !now.Before(*s.ExpiresAt) {
		return false
	}
	return true
}
