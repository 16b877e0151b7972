package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// ErrInvalidSlot is returned when a slot cannot be built from the given moment
var ErrInvalidSlot = errors.New("invalid slot")

// Slot is one candidate appointment opportunity.
// Time is computed once from DateTime and is the only label used for comparisons.
type Slot struct {
	DateTime time.Time
	Time     types.TimeLabel
}

// NewSlot builds a slot on a whole minute
func NewSlot(dateTime time.Time) (Slot, error) {
	if dateTime.IsZero() {
		return Slot{}, ErrInvalidSlot
	}
	if dateTime.Second() != 0 || dateTime.Nanosecond() != 0 {
		return Slot{}, ErrInvalidSlot
	}

	return Slot{
		DateTime: dateTime,
		Time:     types.NewTimeLabel(dateTime),
	}, nil
}

// DateKey returns the booked-index key of the slot's day
func (s Slot) DateKey() types.DateKey {
	return types.NewDateKey(s.DateTime)
}

// Day is the list of slots of one calendar day, in chronological order
type Day struct {
	Date    time.Time // midnight in the schedule location
	DateKey types.DateKey
	Slots   []Slot
}

// IsEmpty returns true if the day has no slots
func (d Day) IsEmpty() bool {
	return len(d.Slots) == 0
}

// Has returns true if the day contains a slot with the given label
func (d Day) Has(label types.TimeLabel) bool {
	_, ok := d.Find(label)
	return ok
}

// Find returns the slot with the given label
func (d Day) Find(label types.TimeLabel) (Slot, bool) {
	for _, s := range d.Slots {
		if s.Time == label {
			return s, true
		}
	}
	return Slot{}, false
}

// FindDay returns the day with the given date key
func FindDay(days []Day, key types.DateKey) (Day, bool) {
	for _, d := range days {
		if d.DateKey == key {
			return d, true
		}
	}
	return Day{}, false
}
