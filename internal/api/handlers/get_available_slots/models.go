package get_available_slots

import (
	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID   string                 `json:"doctorId"`
	DoctorName string                 `json:"doctorName"`
	Speciality string                 `json:"speciality"`
	Fees       float64                `json:"fees"`
	Available  bool                   `json:"available"`
	Days       []handlers.DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		DoctorID:   resp.DoctorID,
		DoctorName: resp.DoctorName,
		Speciality: resp.Speciality,
		Fees:       resp.Fees,
		Available:  resp.Available,
		Days:       handlers.FromDomainDays(resp.Days),
	}
}
