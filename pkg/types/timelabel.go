package types

import (
	"errors"
	"strings"
	"time"
)

// TimeLabelLayout is the only layout used to render slot labels.
// Booked-time indexes store labels in this exact form ("2:30 PM").
const TimeLabelLayout = "3:04 PM"

// ErrInvalidTimeLabel is returned when a string is not a valid slot label
var ErrInvalidTimeLabel = errors.New("invalid time label format")

// TimeLabel is the display label of a slot and the equality key against a
// doctor's booked-time index.
type TimeLabel string

// NewTimeLabel renders t as a label. Seconds are dropped.
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel(t.Format(TimeLabelLayout))
}

// ParseTimeLabel validates s and returns it normalized
// ("02:30 pm" -> "2:30 PM").
func ParseTimeLabel(s string) (TimeLabel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTimeLabel
	}

	t, err := time.Parse(TimeLabelLayout, strings.ToUpper(s))
	if err != nil {
		return "", ErrInvalidTimeLabel
	}

	return NewTimeLabel(t), nil
}

// String returns the label text
func (l TimeLabel) String() string {
	return string(l)
}

// IsZero returns true if no label is set
func (l TimeLabel) IsZero() bool {
	return l == ""
}

// Validate checks that the label is in TimeLabelLayout form
func (l TimeLabel) Validate() error {
	parsed, err := ParseTimeLabel(string(l))
	if err != nil {
		return err
	}
	if parsed != l {
		return ErrInvalidTimeLabel
	}
	return nil
}

// Clock returns hour (0-23) and minute of the label
func (l TimeLabel) Clock() (int, int, error) {
	t, err := time.Parse(TimeLabelLayout, string(l))
	if err != nil {
		return 0, 0, ErrInvalidTimeLabel
	}
	return t.Hour(), t.Minute(), nil
}
