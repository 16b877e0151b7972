package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments/models"
)

const (
	msgInvalidStatus      = "некорректный статус записи"
	msgAuthRequired       = "требуется авторизация"
	msgBackendUnavailable = "сервис клиники временно недоступен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: status (optional: all, active, unpaid, paid, cancelled, completed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.ListUserAppointments(r.Context(), &models.ListAppointmentsRequest{
		Session: session,
		Status:  statusPtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAuthRequired):
			h.logger.Warn("GET /appointments - Session rejected")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, appointments.ErrBackendUnavailable):
			h.logger.Error("GET /appointments - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
