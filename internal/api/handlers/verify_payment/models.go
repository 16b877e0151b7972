package verify_payment

import (
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments/models"
	verifyPayment "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_payment"
)

// VerifyPaymentRequest HTTP request model: payload провайдера оплаты
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *VerifyPaymentRequest) ToUseCaseRequest(session domain.Session) *verifyPayment.Request {
	return &verifyPayment.Request{
		Session: session,
		Confirmation: domain.PaymentConfirmation{
			OrderID:   r.OrderID,
			PaymentID: r.PaymentID,
			Signature: r.Signature,
		},
	}
}

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	Verified     bool                            `json:"verified"`
	Appointments *models.AppointmentListResponse `json:"appointments,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyPayment.Response) *VerifyPaymentResponse {
	result := &VerifyPaymentResponse{Verified: true}
	if resp.Appointments != nil {
		result.Appointments = models.FromDomainAppointmentList(resp.Appointments)
	}
	return result
}
