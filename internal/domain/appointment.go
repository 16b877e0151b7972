package domain

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// Appointment is a reservation owned by the clinic backend
type Appointment struct {
	ID         string
	UserID     string
	DoctorID   string
	DoctorName string
	DateKey    types.DateKey
	Time       types.TimeLabel
	Amount     float64
	Paid       bool
	Cancelled  bool
	Completed  bool
	BookedAt   time.Time
}

// IsActive returns true if the appointment is neither cancelled nor completed
func (a *Appointment) IsActive() bool {
	return !a.Cancelled && !a.Completed
}

// CanBePaid returns true if a payment order may be requested for the appointment
func (a *Appointment) CanBePaid() bool {
	return a.IsActive() && !a.Paid
}

// BookingAttempt is one journal entry of a booking transaction
type BookingAttempt struct {
	ID        int64
	DoctorID  string
	DateKey   types.DateKey
	Time      types.TimeLabel
	Outcome   string
	Message   string
	CreatedAt time.Time
}

// PaymentOrder is the checkout descriptor issued by the clinic backend.
// Opaque here: it is handed to the checkout provider as is.
type PaymentOrder struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Receipt  string
}

// PaymentConfirmation is the checkout provider's completion payload
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}
