package get_booking_attempts

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments/models"
)

type AttemptService interface {
	ListAttempts(ctx context.Context, doctorID string, limit uint64) (*models.AttemptListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
