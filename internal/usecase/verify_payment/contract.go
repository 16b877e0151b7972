package verify_payment

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// PaymentClient интерфейс клиента бэкенда для подтверждения оплаты
type PaymentClient interface {
	VerifyPayment(ctx context.Context, session domain.Session, confirmation domain.PaymentConfirmation) error
	ListAppointments(ctx context.Context, session domain.Session) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
