package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

var (
	// ErrNoTimeSelected возвращается, когда время слота не выбрано
	ErrNoTimeSelected = errors.New("create_booking: no time selected")

	// ErrAuthRequired возвращается, когда сессия отсутствует, истекла или отклонена бэкендом
	ErrAuthRequired = errors.New("create_booking: authentication required")

	// ErrBookingInProgress возвращается при повторной отправке, пока первая еще выполняется
	ErrBookingInProgress = errors.New("create_booking: booking already in progress")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в сетку генерации (формат, прошлое, вне рабочих часов)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_booking: doctor not found")

	// ErrDoctorUnavailable возвращается, когда врач не принимает записи
	ErrDoctorUnavailable = errors.New("create_booking: doctor is not available")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование по иной причине
	ErrRejected = errors.New("create_booking: booking rejected")

	// ErrBackendUnavailable возвращается при сетевых ошибках бэкенда (без повторов)
	ErrBackendUnavailable = errors.New("create_booking: clinic backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError слот заняли раньше. Days содержит свежие свободные дни врача
// (nil, если повторно получить карточку не удалось).
type ConflictError struct {
	DoctorID string
	DateKey  types.DateKey
	Time     types.TimeLabel
	Days     []domain.Day
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s on %s", ErrSlotNotAvailable.Error(), e.Time, e.DateKey)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
