package selection

import "errors"

var (
	// ErrDayOutOfRange возвращается при выборе несуществующего дня
	ErrDayOutOfRange = errors.New("selection: day index out of range")

	// ErrNoDaySelected возвращается при выборе времени без выбранного дня
	ErrNoDaySelected = errors.New("selection: no day selected")

	// ErrTimeNotFree возвращается, когда время не входит в свободные слоты дня
	ErrTimeNotFree = errors.New("selection: time is not free on selected day")

	// ErrNoTimeSelected возвращается, когда выбор не завершен
	ErrNoTimeSelected = errors.New("selection: no time selected")
)
