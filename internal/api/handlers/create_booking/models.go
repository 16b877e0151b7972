package create_booking

import (
	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DoctorID string `json:"doctorId"`
	SlotDate string `json:"slotDate"` // "1_3_2024"
	SlotTime string `json:"slotTime"` // "2:30 PM"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message  string                 `json:"message"`
	DoctorID string                 `json:"doctorId"`
	SlotDate string                 `json:"slotDate"`
	SlotTime string                 `json:"slotTime"`
	Days     []handlers.DayResponse `json:"days"`
}

// ConflictResponse тело ответа 409: свежие свободные дни для повторного выбора
type ConflictResponse struct {
	handlers.ErrorResponse
	Days []handlers.DayResponse `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат даты и времени проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest(session domain.Session) *createBooking.Request {
	return &createBooking.Request{
		Session:  session,
		DoctorID: r.DoctorID,
		DateKey:  types.DateKey(r.SlotDate),
		Time:     types.TimeLabel(r.SlotTime),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Message:  resp.Message,
		DoctorID: resp.DoctorID,
		SlotDate: resp.DateKey.String(),
		SlotTime: resp.Time.String(),
		Days:     handlers.FromDomainDays(resp.Days),
	}
}
