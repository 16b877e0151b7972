package domain

import (
	"errors"
	"time"
)

// ErrInvalidWorkingHours is returned for an unusable working-hours policy
var ErrInvalidWorkingHours = errors.New("invalid working hours")

// WorkingHours is the slot policy shared by all doctors.
// Slots start every SlotMinutes from OpenHour:00 and end before CloseHour:00.
type WorkingHours struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
	HorizonDays int
	Location    *time.Location
}

// DefaultWorkingHours returns the 10:00-21:00 policy with 30 minute slots over 7 days
func DefaultWorkingHours(loc *time.Location) WorkingHours {
	if loc == nil {
		loc = time.Local
	}
	return WorkingHours{
		OpenHour:    DefaultOpenHour,
		CloseHour:   DefaultCloseHour,
		SlotMinutes: DefaultSlotMinutes,
		HorizonDays: DefaultHorizonDays,
		Location:    loc,
	}
}

// Validate checks the policy
func (w WorkingHours) Validate() error {
	if w.OpenHour < 0 || w.CloseHour > 24 || w.OpenHour >= w.CloseHour {
		return ErrInvalidWorkingHours
	}
	if w.SlotMinutes <= 0 || 60%w.SlotMinutes != 0 {
		return ErrInvalidWorkingHours
	}
	if w.HorizonDays <= 0 || w.Location == nil {
		return ErrInvalidWorkingHours
	}
	return nil
}

// Opening returns the opening moment of the day containing date
func (w WorkingHours) Opening(date time.Time) time.Time {
	y, m, d := date.In(w.Location).Date()
	return time.Date(y, m, d, w.OpenHour, 0, 0, 0, w.Location)
}

// Closing returns the closing moment of the day containing date
func (w WorkingHours) Closing(date time.Time) time.Time {
	y, m, d := date.In(w.Location).Date()
	return time.Date(y, m, d, w.CloseHour, 0, 0, 0, w.Location)
}
