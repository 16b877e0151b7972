package create_payment_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments"
)

// UseCase use case для создания заказа оплаты записи
type UseCase struct {
	appointments  AppointmentFinder
	paymentClient PaymentClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentFinder,
	paymentClient PaymentClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments:  appointments,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Execute проверяет, что запись можно оплатить, и запрашивает заказ у бэкенда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentOrder: appointment=%s", req.AppointmentID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}
	if req.Session.Token == "" {
		return nil, ErrAuthRequired
	}

	// 2. Запись должна быть у пользователя, не оплачена и активна
	appointment, err := uc.appointments.GetByID(ctx, req.Session, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointments.ErrAuthRequired):
			return nil, ErrAuthRequired
		case errors.Is(err, appointments.ErrBackendUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			uc.logger.Error("CreatePaymentOrder: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
	}

	if appointment.Paid {
		uc.logger.Warn("CreatePaymentOrder: appointment id=%s is already paid", req.AppointmentID)
		return nil, ErrAlreadyPaid
	}
	if !appointment.IsActive() {
		uc.logger.Warn("CreatePaymentOrder: appointment id=%s is not active", req.AppointmentID)
		return nil, ErrAppointmentInactive
	}

	// 3. Запрашиваем заказ оплаты
	order, err := uc.paymentClient.CreatePaymentOrder(ctx, req.Session, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, clinicbackend.ErrUnauthorized):
			return nil, ErrAuthRequired
		case errors.Is(err, clinicbackend.ErrNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, clinicbackend.ErrRejected):
			uc.logger.Warn("CreatePaymentOrder: backend rejected order for appointment id=%s: %v", req.AppointmentID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		case errors.Is(err, clinicbackend.ErrUnavailable):
			uc.logger.Error("CreatePaymentOrder: backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			uc.logger.Error("CreatePaymentOrder: failed to create order for appointment id=%s: %v", req.AppointmentID, err)
			return nil, fmt.Errorf("%w: failed to create payment order: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreatePaymentOrder: order id=%s created for appointment id=%s", order.ID, req.AppointmentID)

	return &Response{
		AppointmentID: req.AppointmentID,
		Order:         *order,
	}, nil
}
