package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// validateRequest валидирует и нормализует входные данные запроса.
// Пустое время проверяется первым: без него запрос не должен уходить в сеть.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.Time.IsZero() || strings.TrimSpace(req.Time.String()) == "" {
		return ErrNoTimeSelected
	}

	if strings.TrimSpace(req.DoctorID) == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	label, err := types.ParseTimeLabel(req.Time.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	req.Time = label

	key, err := types.ParseDateKey(req.DateKey.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	req.DateKey = key

	return nil
}
