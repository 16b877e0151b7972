package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
)

// UseCase use case для подтверждения оплаты записи
type UseCase struct {
	paymentClient PaymentClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(paymentClient PaymentClient, logger Logger) *UseCase {
	return &UseCase{
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Execute передает подтверждение провайдера оплаты в бэкенд.
// Состояние оплаты меняет только бэкенд; при ошибке здесь ничего не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyPayment: order=%s", req.Confirmation.OrderID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VerifyPayment: validation failed: %v", err)
		return nil, err
	}
	if req.Session.Token == "" {
		return nil, ErrAuthRequired
	}

	if err := uc.paymentClient.VerifyPayment(ctx, req.Session, req.Confirmation); err != nil {
		switch {
		case errors.Is(err, clinicbackend.ErrUnauthorized):
			return nil, ErrAuthRequired
		case errors.Is(err, clinicbackend.ErrRejected), errors.Is(err, clinicbackend.ErrNotFound):
			uc.logger.Warn("VerifyPayment: payment for order=%s rejected: %v", req.Confirmation.OrderID, err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentRejected, err)
		case errors.Is(err, clinicbackend.ErrUnavailable):
			uc.logger.Error("VerifyPayment: backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			uc.logger.Error("VerifyPayment: failed to verify order=%s: %v", req.Confirmation.OrderID, err)
			return nil, fmt.Errorf("%w: failed to verify payment: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("VerifyPayment: order=%s verified", req.Confirmation.OrderID)

	// Обновляем список записей; ошибка не отменяет подтвержденную оплату
	list, err := uc.paymentClient.ListAppointments(ctx, req.Session)
	if err != nil {
		uc.logger.Warn("VerifyPayment: failed to refresh appointments: %v", err)
		return &Response{}, nil
	}

	return &Response{Appointments: list}, nil
}
