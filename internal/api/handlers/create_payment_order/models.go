package create_payment_order

import createPaymentOrder "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_payment_order"

// PaymentOrderResponse HTTP response model: заказ передается провайдеру оплаты как есть
type PaymentOrderResponse struct {
	AppointmentID string `json:"appointmentId"`
	OrderID       string `json:"orderId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Receipt       string `json:"receipt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentOrder.Response) *PaymentOrderResponse {
	return &PaymentOrderResponse{
		AppointmentID: resp.AppointmentID,
		OrderID:       resp.Order.ID,
		Amount:        resp.Order.Amount,
		Currency:      resp.Order.Currency,
		Receipt:       resp.Order.Receipt,
	}
}
