package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	verifyPayment "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_payment"
)

const (
	msgInvalidRequest     = "некорректные данные оплаты"
	msgAuthRequired       = "требуется авторизация"
	msgPaymentRejected    = "оплата не подтверждена"
	msgBackendUnavailable = "сервис клиники временно недоступен"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	session, _ := middleware.GetSession(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, verifyPayment.ErrAuthRequired):
			h.logger.Warn("POST /payments/verify - Authentication required")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, verifyPayment.ErrPaymentRejected):
			h.logger.Warn("POST /payments/verify - Payment rejected: order_id=%s", req.OrderID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRejected)

		case errors.Is(err, verifyPayment.ErrBackendUnavailable):
			h.logger.Error("POST /payments/verify - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /payments/verify - Failed to verify payment: order_id=%s, error=%v", req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/verify - Payment verified: order_id=%s", req.OrderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
