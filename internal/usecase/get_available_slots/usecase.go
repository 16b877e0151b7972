package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
)

// UseCase use case для получения свободных слотов врача
type UseCase struct {
	doctorClient DoctorClient
	policy       domain.WorkingHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorClient DoctorClient,
	policy domain.WorkingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorClient: doctorClient,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов.
// Карточка врача запрашивается заново при каждом вызове.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: doctor=%s", req.DoctorID)

	// 2. Получаем свежую карточку врача
	doctor, err := uc.doctorClient.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, clinicbackend.ErrNotFound):
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		case errors.Is(err, clinicbackend.ErrUnavailable):
			uc.logger.Error("GetAvailableSlots: backend unavailable for doctor id=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
		}
	}

	// 3. Генерируем неделю и отфильтровываем занятые слоты
	days := FreeWeek(uc.timeProvider.Now(), uc.policy, doctor.Booked)

	uc.logger.Info("GetAvailableSlots: doctor=%s available=%t free_days=%d",
		doctor.ID, doctor.Available, len(days))

	return &Response{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Speciality: doctor.Speciality,
		Fees:       doctor.Fees,
		Available:  doctor.Available,
		Days:       days,
	}, nil
}
