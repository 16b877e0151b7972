package create_payment_order

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// AppointmentFinder интерфейс поиска записи пользователя
type AppointmentFinder interface {
	GetByID(ctx context.Context, session domain.Session, appointmentID string) (*domain.Appointment, error)
}

// PaymentClient интерфейс клиента бэкенда для оплаты
type PaymentClient interface {
	CreatePaymentOrder(ctx context.Context, session domain.Session, appointmentID string) (*domain.PaymentOrder, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
