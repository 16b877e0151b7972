package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// ClinicClient интерфейс клиента бэкенда клиники
type ClinicClient interface {
	GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error)
	BookAppointment(ctx context.Context, session domain.Session, doctorID string, dateKey types.DateKey, label types.TimeLabel) (string, error)
}

// JournalRepository интерфейс журнала попыток бронирования
type JournalRepository interface {
	Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error)
}

// OutcomeRecorder интерфейс для метрик исходов бронирования
type OutcomeRecorder interface {
	RecordBookingOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
