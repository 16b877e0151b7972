package handlers

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// SlotResponse свободный слот
type SlotResponse struct {
	DateTime string `json:"datetime"` // RFC3339
	Time     string `json:"time"`     // "2:30 PM"
}

// DayResponse свободные слоты одного дня
type DayResponse struct {
	Date    string         `json:"date"`    // "2024-03-01"
	DateKey string         `json:"dateKey"` // "1_3_2024"
	Weekday string         `json:"weekday"`
	Slots   []SlotResponse `json:"slots"`
}

// FromDomainDays конвертирует свободные дни в HTTP модель
func FromDomainDays(days []domain.Day) []DayResponse {
	result := make([]DayResponse, 0, len(days))

	for _, d := range days {
		slots := make([]SlotResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotResponse{
				DateTime: s.DateTime.Format(time.RFC3339),
				Time:     s.Time.String(),
			})
		}

		result = append(result, DayResponse{
			Date:    d.Date.Format(domain.DateFormat),
			DateKey: d.DateKey.String(),
			Weekday: d.Date.Weekday().String()[:3],
			Slots:   slots,
		})
	}

	return result
}
