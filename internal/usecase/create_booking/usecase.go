package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
	"github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
)

// UseCase use case для бронирования слота у врача
type UseCase struct {
	clinicClient ClinicClient
	journal      JournalRepository
	outcomes     OutcomeRecorder
	policy       domain.WorkingHours
	guard        *inFlight
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// journal и outcomes могут быть nil.
func NewUseCase(
	clinicClient ClinicClient,
	journal JournalRepository,
	outcomes OutcomeRecorder,
	policy domain.WorkingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		clinicClient: clinicClient,
		journal:      journal,
		outcomes:     outcomes,
		policy:       policy,
		guard:        newInFlight(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет бронирование.
// Слот перепроверяется по свежей карточке врача непосредственно перед отправкой.
// Гонку между двумя клиентами разрешает бэкенд: его отказ возвращается как *ConflictError.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (без обращения к сети)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		switch {
		case errors.Is(err, ErrNoTimeSelected):
			uc.record(ctx, req, domain.OutcomeNoTime, err)
		case errors.Is(err, ErrInvalidTimeSlot):
			uc.record(ctx, req, domain.OutcomeInvalidSlot, err)
		}
		return nil, err
	}
	uc.logger.Info("CreateBooking: doctor=%s, date=%s, time=%s", req.DoctorID, req.DateKey, req.Time)

	now := uc.timeProvider.Now()

	// 2. Проверяем сессию (без обращения к сети)
	if !req.Session.IsAuthenticated(now) {
		uc.logger.Warn("CreateBooking: no valid session for doctor=%s", req.DoctorID)
		uc.record(ctx, req, domain.OutcomeAuthRequired, ErrAuthRequired)
		return nil, ErrAuthRequired
	}

	// 3. Не допускаем параллельную отправку для той же сессии и врача
	if !uc.guard.acquire(req.Session.Token, req.DoctorID) {
		uc.logger.Warn("CreateBooking: submission for doctor=%s already in progress", req.DoctorID)
		return nil, ErrBookingInProgress
	}
	defer uc.guard.release(req.Session.Token, req.DoctorID)

	// 4. Получаем свежую карточку врача и перепроверяем слот
	doctor, err := uc.clinicClient.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		mapped := uc.mapFetchError(req, err)
		uc.record(ctx, req, domain.OutcomeBackendFailed, mapped)
		return nil, mapped
	}

	candidates := get_available_slots.GenerateWeek(now, uc.policy)
	day, ok := domain.FindDay(candidates, req.DateKey)
	if !ok || !day.Has(req.Time) {
		uc.logger.Warn("CreateBooking: slot %s on %s is not a candidate slot", req.Time, req.DateKey)
		uc.record(ctx, req, domain.OutcomeInvalidSlot, ErrInvalidTimeSlot)
		return nil, fmt.Errorf("%w: %s on %s", ErrInvalidTimeSlot, req.Time, req.DateKey)
	}

	if doctor.Booked.IsBooked(req.DateKey, req.Time) {
		conflict := &ConflictError{
			DoctorID: req.DoctorID,
			DateKey:  req.DateKey,
			Time:     req.Time,
			Days:     get_available_slots.FilterFree(candidates, doctor.Booked),
		}
		uc.logger.Warn("CreateBooking: %v (stale selection)", conflict)
		uc.record(ctx, req, domain.OutcomeConflict, conflict)
		return nil, conflict
	}

	// 5. Врач должен принимать записи
	if !doctor.Available {
		uc.logger.Warn("CreateBooking: doctor id=%s is not available", req.DoctorID)
		uc.record(ctx, req, domain.OutcomeUnavailable, ErrDoctorUnavailable)
		return nil, ErrDoctorUnavailable
	}

	// 6. Отправляем бронирование
	message, err := uc.clinicClient.BookAppointment(ctx, req.Session, req.DoctorID, req.DateKey, req.Time)
	if err != nil {
		return nil, uc.handleSubmitError(ctx, req, err)
	}

	uc.logger.Info("CreateBooking: booked doctor=%s, date=%s, time=%s", req.DoctorID, req.DateKey, req.Time)
	uc.record(ctx, req, domain.OutcomeBooked, nil)

	// 7. Обновляем свободные слоты после успешного бронирования
	return &Response{
		DoctorID: req.DoctorID,
		DateKey:  req.DateKey,
		Time:     req.Time,
		Message:  message,
		Days:     uc.refresh(ctx, req.DoctorID),
	}, nil
}

// handleSubmitError классифицирует ошибку отправки бронирования
func (uc *UseCase) handleSubmitError(ctx context.Context, req *Request, err error) error {
	switch {
	case errors.Is(err, clinicbackend.ErrSlotUnavailable):
		conflict := &ConflictError{
			DoctorID: req.DoctorID,
			DateKey:  req.DateKey,
			Time:     req.Time,
			Days:     uc.refresh(ctx, req.DoctorID),
		}
		uc.logger.Warn("CreateBooking: %v (taken concurrently)", conflict)
		uc.record(ctx, req, domain.OutcomeConflict, conflict)
		return conflict

	case errors.Is(err, clinicbackend.ErrUnauthorized):
		uc.logger.Warn("CreateBooking: session rejected by backend for doctor=%s", req.DoctorID)
		uc.record(ctx, req, domain.OutcomeAuthRequired, err)
		return fmt.Errorf("%w: %v", ErrAuthRequired, err)

	case errors.Is(err, clinicbackend.ErrDoctorUnavailable):
		uc.logger.Warn("CreateBooking: backend reports doctor id=%s unavailable", req.DoctorID)
		uc.record(ctx, req, domain.OutcomeUnavailable, err)
		return fmt.Errorf("%w: %v", ErrDoctorUnavailable, err)

	case errors.Is(err, clinicbackend.ErrNotFound):
		uc.logger.Warn("CreateBooking: backend reports doctor id=%s not found", req.DoctorID)
		uc.record(ctx, req, domain.OutcomeBackendFailed, err)
		return fmt.Errorf("%w: %v", ErrDoctorNotFound, err)

	case errors.Is(err, clinicbackend.ErrRejected):
		uc.logger.Warn("CreateBooking: backend rejected booking for doctor=%s: %v", req.DoctorID, err)
		uc.record(ctx, req, domain.OutcomeBackendFailed, err)
		return fmt.Errorf("%w: %v", ErrRejected, err)

	case errors.Is(err, clinicbackend.ErrUnavailable):
		uc.logger.Error("CreateBooking: backend unavailable for doctor=%s: %v", req.DoctorID, err)
		uc.record(ctx, req, domain.OutcomeBackendFailed, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)

	default:
		uc.logger.Error("CreateBooking: failed to book doctor=%s: %v", req.DoctorID, err)
		uc.record(ctx, req, domain.OutcomeBackendFailed, err)
		return fmt.Errorf("%w: failed to book appointment: %v", ErrInternal, err)
	}
}

func (uc *UseCase) mapFetchError(req *Request, err error) error {
	switch {
	case errors.Is(err, clinicbackend.ErrNotFound):
		uc.logger.Warn("CreateBooking: doctor id=%s not found", req.DoctorID)
		return ErrDoctorNotFound
	case errors.Is(err, clinicbackend.ErrUnavailable):
		uc.logger.Error("CreateBooking: backend unavailable for doctor id=%s: %v", req.DoctorID, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("CreateBooking: failed to get doctor id=%s: %v", req.DoctorID, err)
		return fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}
}

// refresh повторно получает карточку врача и возвращает свободные дни.
// Ошибка только логируется: исход бронирования уже известен.
func (uc *UseCase) refresh(ctx context.Context, doctorID string) []domain.Day {
	doctor, err := uc.clinicClient.GetDoctor(ctx, doctorID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to refresh doctor id=%s: %v", doctorID, err)
		return nil
	}

	return get_available_slots.FreeWeek(uc.timeProvider.Now(), uc.policy, doctor.Booked)
}

// record пишет исход в журнал и метрики. Ошибки журнала не влияют на результат.
func (uc *UseCase) record(ctx context.Context, req *Request, outcome string, cause error) {
	if uc.outcomes != nil {
		uc.outcomes.RecordBookingOutcome(outcome)
	}
	if uc.journal == nil {
		return
	}

	attempt := &domain.BookingAttempt{
		DoctorID: req.DoctorID,
		DateKey:  req.DateKey,
		Time:     req.Time,
		Outcome:  outcome,
	}
	if cause != nil {
		attempt.Message = cause.Error()
	}

	if _, err := uc.journal.Create(ctx, attempt); err != nil {
		uc.logger.Warn("CreateBooking: failed to write journal entry: %v", err)
	}
}
