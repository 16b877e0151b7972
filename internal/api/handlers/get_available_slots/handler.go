package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDoctorID    = "некорректный ID врача"
	msgDoctorNotFound     = "врач не найден"
	msgBackendUnavailable = "сервис клиники временно недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{DoctorID: doctorID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/available-slots - Invalid doctor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		case errors.Is(err, getAvailableSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/available-slots - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getAvailableSlots.ErrBackendUnavailable):
			h.logger.Error("GET /doctors/{id}/available-slots - Backend unavailable: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /doctors/{id}/available-slots - Failed to get slots: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/available-slots - Slots retrieved: doctor_id=%s, days=%d",
		doctorID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
