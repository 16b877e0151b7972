package verify_payment

import "github.com/m04kA/SMC-DoctorBooking/internal/domain"

// Request модель запроса на подтверждение оплаты
type Request struct {
	Session      domain.Session
	Confirmation domain.PaymentConfirmation
}

// Response модель ответа: свежий список записей пользователя
type Response struct {
	Appointments []*domain.Appointment // nil, если обновить список не удалось
}
