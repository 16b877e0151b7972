package create_payment_order

import "github.com/m04kA/SMC-DoctorBooking/internal/domain"

// Request модель запроса на создание заказа оплаты
type Request struct {
	Session       domain.Session
	AppointmentID string
}

// Response модель ответа с заказом оплаты для провайдера оплаты
type Response struct {
	AppointmentID string
	Order         domain.PaymentOrder
}
