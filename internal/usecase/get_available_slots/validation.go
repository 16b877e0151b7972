package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DoctorID) == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	return nil
}
