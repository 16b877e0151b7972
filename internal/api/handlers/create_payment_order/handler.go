package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	createPaymentOrder "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_payment_order"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAuthRequired         = "требуется авторизация"
	msgAppointmentNotFound  = "запись не найдена"
	msgAlreadyPaid          = "запись уже оплачена"
	msgAppointmentInactive  = "запись отменена или завершена"
	msgOrderRejected        = "клиника отклонила создание заказа оплаты"
	msgBackendUnavailable   = "сервис клиники временно недоступен"
)

type Handler struct {
	useCase CreatePaymentOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payment-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	session, _ := middleware.GetSession(r.Context())

	result, err := h.useCase.Execute(r.Context(), &createPaymentOrder.Request{
		Session:       session,
		AppointmentID: appointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentOrder.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/payment-order - Invalid appointment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, createPaymentOrder.ErrAuthRequired):
			h.logger.Warn("POST /appointments/{id}/payment-order - Authentication required")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, createPaymentOrder.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/payment-order - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, createPaymentOrder.ErrAlreadyPaid):
			h.logger.Warn("POST /appointments/{id}/payment-order - Already paid: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, createPaymentOrder.ErrAppointmentInactive):
			h.logger.Warn("POST /appointments/{id}/payment-order - Appointment inactive: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAppointmentInactive)

		case errors.Is(err, createPaymentOrder.ErrRejected):
			h.logger.Warn("POST /appointments/{id}/payment-order - Order rejected: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgOrderRejected)

		case errors.Is(err, createPaymentOrder.ErrBackendUnavailable):
			h.logger.Error("POST /appointments/{id}/payment-order - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /appointments/{id}/payment-order - Failed to create order: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment-order - Order created: appointment_id=%s, order_id=%s",
		appointmentID, result.Order.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
