// Package selection хранит выбор пациента (день, время) поверх свободных дней врача.
package selection

import (
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// State состояние выбора
type State int

const (
	NoDaySelected State = iota
	DaySelected
	TimeSelected
)

func (s State) String() string {
	switch s {
	case NoDaySelected:
		return "no_day_selected"
	case DaySelected:
		return "day_selected"
	case TimeSelected:
		return "time_selected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Choice итог выбора, передаваемый в бронирование
type Choice struct {
	DateKey types.DateKey
	Time    types.TimeLabel
}

// Selection выбор дня и времени для одного врача.
// Не потокобезопасен: принадлежит одному сеансу пользователя.
type Selection struct {
	doctorID string
	days     []domain.Day
	dayIndex int
	dateKey  types.DateKey
	label    types.TimeLabel
}

// New создает выбор поверх свободных дней врача
func New(doctorID string, days []domain.Day) *Selection {
	return &Selection{
		doctorID: doctorID,
		days:     days,
		dayIndex: -1,
	}
}

// DoctorID возвращает врача, к которому относится выбор
func (s *Selection) DoctorID() string {
	return s.doctorID
}

// Days возвращает свободные дни, по которым идет выбор
func (s *Selection) Days() []domain.Day {
	return s.days
}

// State возвращает текущее состояние
func (s *Selection) State() State {
	switch {
	case s.dayIndex < 0:
		return NoDaySelected
	case s.label.IsZero():
		return DaySelected
	default:
		return TimeSelected
	}
}

// DayIndex возвращает индекс выбранного дня или -1
func (s *Selection) DayIndex() int {
	return s.dayIndex
}

// SelectDay выбирает день. Выбранное время сбрасывается.
func (s *Selection) SelectDay(index int) error {
	if index < 0 || index >= len(s.days) {
		return fmt.Errorf("%w: %d of %d", ErrDayOutOfRange, index, len(s.days))
	}

	s.dayIndex = index
	s.dateKey = s.days[index].DateKey
	s.label = ""
	return nil
}

// SelectTime выбирает время среди свободных слотов выбранного дня
func (s *Selection) SelectTime(label types.TimeLabel) error {
	if s.dayIndex < 0 {
		return ErrNoDaySelected
	}

	if !s.days[s.dayIndex].Has(label) {
		return fmt.Errorf("%w: %s on %s", ErrTimeNotFree, label, s.dateKey)
	}

	s.label = label
	return nil
}

// Refresh заменяет свободные дни свежими и перепроверяет выбор.
// День ищется по ключу: если он исчез, выбор сбрасывается.
// Время, которое больше не свободно, сбрасывается. Возвращает true, если выбор изменился.
func (s *Selection) Refresh(days []domain.Day) bool {
	prevState, prevKey, prevLabel := s.State(), s.dateKey, s.label
	s.days = days

	if s.dayIndex < 0 {
		return false
	}

	index := -1
	for i, d := range days {
		if d.DateKey == s.dateKey {
			index = i
			break
		}
	}

	if index < 0 {
		s.dayIndex = -1
		s.dateKey = ""
		s.label = ""
		return true
	}

	s.dayIndex = index
	if !s.label.IsZero() && !days[index].Has(s.label) {
		s.label = ""
	}

	return s.State() != prevState || s.dateKey != prevKey || s.label != prevLabel
}

// Reset сбрасывает выбор при смене врача
func (s *Selection) Reset(doctorID string, days []domain.Day) {
	s.doctorID = doctorID
	s.days = days
	s.dayIndex = -1
	s.dateKey = ""
	s.label = ""
}

// Choice возвращает выбранную пару (день, время)
func (s *Selection) Choice() (Choice, error) {
	if s.State() != TimeSelected {
		return Choice{}, ErrNoTimeSelected
	}

	return Choice{
		DateKey: s.dateKey,
		Time:    s.label,
	}, nil
}
