package domain

import "github.com/m04kA/SMC-DoctorBooking/pkg/types"

// Doctor is the clinic backend's doctor record, read-only here
type Doctor struct {
	ID         string
	Name       string
	Speciality string
	Fees       float64
	Available  bool
	Booked     BookedIndex
}

// BookedIndex maps a date key to the time labels already reserved on that day.
// It is a snapshot: treat it as stale as soon as it is fetched.
type BookedIndex map[types.DateKey][]types.TimeLabel

// IsBooked returns true if the exact (date key, time label) pair is reserved
func (idx BookedIndex) IsBooked(key types.DateKey, label types.TimeLabel) bool {
	for _, booked := range idx[key] {
		if booked == label {
			return true
		}
	}
	return false
}

// BookedOn returns the reserved labels for one day
func (idx BookedIndex) BookedOn(key types.DateKey) []types.TimeLabel {
	return idx[key]
}
