package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments/models"
)

const (
	defaultAttemptsLimit = 50
	maxAttemptsLimit     = 500
)

// Service сервис для работы с записями пользователя
type Service struct {
	clinicClient ClinicClient
	journal      JournalRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей. journal может быть nil.
func NewService(
	clinicClient ClinicClient,
	journal JournalRepository,
	logger Logger,
) *Service {
	return &Service{
		clinicClient: clinicClient,
		journal:      journal,
		logger:       logger,
	}
}

// ListUserAppointments получает записи пользователя сессии
// Опционально фильтрует по статусу
func (s *Service) ListUserAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	match, err := req.Matcher()
	if err != nil {
		s.logger.Warn("ListUserAppointments: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.fetch(ctx, req.Session, "ListUserAppointments")
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Appointment, 0, len(list))
	for _, a := range list {
		if match(a) {
			filtered = append(filtered, a)
		}
	}

	s.logger.Info("ListUserAppointments: successfully fetched %d appointments (%d total)", len(filtered), len(list))
	return models.FromDomainAppointmentList(filtered), nil
}

// GetByID ищет запись среди записей пользователя сессии
func (s *Service) GetByID(ctx context.Context, session domain.Session, appointmentID string) (*domain.Appointment, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	list, err := s.fetch(ctx, session, "GetByID")
	if err != nil {
		return nil, err
	}

	for _, a := range list {
		if a.ID == appointmentID {
			return a, nil
		}
	}

	s.logger.Warn("GetByID: appointment id=%s not found", appointmentID)
	return nil, ErrAppointmentNotFound
}

// ListAttempts получает последние попытки бронирования к врачу из журнала
func (s *Service) ListAttempts(ctx context.Context, doctorID string, limit uint64) (*models.AttemptListResponse, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	if strings.TrimSpace(doctorID) == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if limit == 0 {
		limit = defaultAttemptsLimit
	}
	if limit > maxAttemptsLimit {
		limit = maxAttemptsLimit
	}

	attempts, err := s.journal.ListByDoctor(ctx, doctorID, limit)
	if err != nil {
		s.logger.Error("ListAttempts: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ListAttempts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAttempts: fetched %d attempts for doctor=%s", len(attempts), doctorID)
	return models.FromDomainAttemptList(attempts), nil
}

func (s *Service) fetch(ctx context.Context, session domain.Session, op string) ([]*domain.Appointment, error) {
	if session.Token == "" {
		return nil, ErrAuthRequired
	}

	list, err := s.clinicClient.ListAppointments(ctx, session)
	if err != nil {
		switch {
		case errors.Is(err, clinicbackend.ErrUnauthorized):
			s.logger.Warn("%s: session rejected by backend", op)
			return nil, ErrAuthRequired
		case errors.Is(err, clinicbackend.ErrUnavailable):
			s.logger.Error("%s: backend unavailable: %v", op, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			s.logger.Error("%s: failed to list appointments: %v", op, err)
			return nil, fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
		}
	}

	return list, nil
}
