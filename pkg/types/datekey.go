package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateKey is returned when a string is not a day_month_year key
var ErrInvalidDateKey = errors.New("invalid date key format")

// DateKey indexes a doctor's booked times for one calendar day.
// Format: day_month_year without zero padding, month 1-indexed ("1_3_2024").
type DateKey string

// NewDateKey builds the key for the calendar day of t in t's location
func NewDateKey(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey(fmt.Sprintf("%d_%d_%d", d, int(m), y))
}

// ParseDateKey validates s and returns it as a DateKey
func ParseDateKey(s string) (DateKey, error) {
	t, err := parseDateKey(s, time.UTC)
	if err != nil {
		return "", err
	}
	return NewDateKey(t), nil
}

// String returns the key text
func (k DateKey) String() string {
	return string(k)
}

// IsZero returns true if no key is set
func (k DateKey) IsZero() bool {
	return k == ""
}

// Date returns midnight of the keyed day in loc
func (k DateKey) Date(loc *time.Location) (time.Time, error) {
	return parseDateKey(string(k), loc)
}

func parseDateKey(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "_")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDateKey
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, ErrInvalidDateKey
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if month > 12 {
		return time.Time{}, ErrInvalidDateKey
	}

	// time.Date normalizes 31_2 into 2_3
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, ErrInvalidDateKey
	}

	return t, nil
}
