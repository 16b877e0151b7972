package get_booking_attempts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/appointments"
)

const (
	msgInvalidLimit    = "некорректный параметр limit"
	msgInvalidDoctorID = "некорректный ID врача"
	msgJournalDisabled = "журнал бронирований отключен"
)

type Handler struct {
	service AttemptService
	logger  Logger
}

func NewHandler(service AttemptService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/booking-attempts
// Query params: limit (optional, по умолчанию 50)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /doctors/{id}/booking-attempts - Invalid limit: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListAttempts(r.Context(), doctorID, limit)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/booking-attempts - Invalid doctor ID")
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		case errors.Is(err, appointments.ErrJournalDisabled):
			h.logger.Warn("GET /doctors/{id}/booking-attempts - Journal disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgJournalDisabled)

		default:
			h.logger.Error("GET /doctors/{id}/booking-attempts - Failed to list attempts: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/booking-attempts - Attempts retrieved: doctor_id=%s, count=%d", doctorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
