package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoTimeSelected     = "выберите время приема"
	msgAuthRequired       = "войдите, чтобы записаться на прием"
	msgInProgress         = "запись уже отправлена, дождитесь ответа"
	msgSlotNotAvailable   = "выбранное время уже занято, выберите другое"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgDoctorNotFound     = "врач не найден"
	msgDoctorUnavailable  = "врач сейчас не принимает записи"
	msgBookingRejected    = "клиника отклонила запись"
	msgBackendUnavailable = "сервис клиники временно недоступен, попробуйте позже"
	msgInvalidDoctorID    = "некорректный ID врача"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сессия может отсутствовать: use case сам вернет ErrAuthRequired после проверки времени
	session, _ := middleware.GetSession(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		var conflict *createBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot not available: doctor_id=%s, date=%s, time=%s",
				req.DoctorID, req.SlotDate, req.SlotTime)
			handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
				ErrorResponse: handlers.ErrorResponse{Code: http.StatusConflict, Message: msgSlotNotAvailable},
				Days:          handlers.FromDomainDays(conflict.Days),
			})

		case errors.Is(err, createBooking.ErrNoTimeSelected):
			h.logger.Warn("POST /bookings - No time selected: doctor_id=%s", req.DoctorID)
			handlers.RespondBadRequest(w, msgNoTimeSelected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: doctor_id=%s, date=%s, time=%s",
				req.DoctorID, req.SlotDate, req.SlotTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrAuthRequired):
			h.logger.Warn("POST /bookings - Authentication required: doctor_id=%s", req.DoctorID)
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, createBooking.ErrBookingInProgress):
			h.logger.Warn("POST /bookings - Booking in progress: doctor_id=%s", req.DoctorID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgInProgress)

		case errors.Is(err, createBooking.ErrDoctorNotFound):
			h.logger.Warn("POST /bookings - Doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createBooking.ErrDoctorUnavailable):
			h.logger.Warn("POST /bookings - Doctor unavailable: doctor_id=%s", req.DoctorID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDoctorUnavailable)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /bookings - Booking rejected: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondBadRequest(w, msgBookingRejected)

		case errors.Is(err, createBooking.ErrBackendUnavailable):
			h.logger.Error("POST /bookings - Backend unavailable: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: doctor_id=%s, date=%s, time=%s",
		result.DoctorID, result.DateKey, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
