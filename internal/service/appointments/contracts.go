package appointments

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	ListAppointments(ctx context.Context, session domain.Session) ([]*domain.Appointment, error)
}

// JournalRepository интерфейс журнала попыток бронирования
type JournalRepository interface {
	ListByDoctor(ctx context.Context, doctorID string, limit uint64) ([]*domain.BookingAttempt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
