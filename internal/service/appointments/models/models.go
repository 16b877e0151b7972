package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном фильтре статуса
var ErrInvalidStatus = errors.New("invalid appointment status")

// Фильтры статуса записей
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ListAppointmentsRequest запрос на получение записей пользователя
type ListAppointmentsRequest struct {
	Session domain.Session `json:"-"`
	Status  *string        `json:"status,omitempty"`
}

// Matcher возвращает предикат фильтра статуса
func (r *ListAppointmentsRequest) Matcher() (func(a *domain.Appointment) bool, error) {
	if r.Status == nil {
		return func(*domain.Appointment) bool { return true }, nil
	}

	switch *r.Status {
	case StatusAll, "":
		return func(*domain.Appointment) bool { return true }, nil
	case StatusActive:
		return func(a *domain.Appointment) bool { return a.IsActive() }, nil
	case StatusUnpaid:
		return func(a *domain.Appointment) bool { return a.CanBePaid() }, nil
	case StatusPaid:
		return func(a *domain.Appointment) bool { return a.Paid }, nil
	case StatusCancelled:
		return func(a *domain.Appointment) bool { return a.Cancelled }, nil
	case StatusCompleted:
		return func(a *domain.Appointment) bool { return a.Completed }, nil
	default:
		return nil, ErrInvalidStatus
	}
}

// AppointmentResponse запись пользователя
type AppointmentResponse struct {
	ID         string     `json:"id"`
	DoctorID   string     `json:"doctorId"`
	DoctorName string     `json:"doctorName"`
	SlotDate   string     `json:"slotDate"`
	SlotTime   string     `json:"slotTime"`
	Amount     float64    `json:"amount"`
	Paid       bool       `json:"paid"`
	Cancelled  bool       `json:"cancelled"`
	Completed  bool       `json:"completed"`
	CanBePaid  bool       `json:"canBePaid"`
	BookedAt   *time.Time `json:"bookedAt,omitempty"`
}

// AppointmentListResponse список записей пользователя
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в ответ
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:         a.ID,
		DoctorID:   a.DoctorID,
		DoctorName: a.DoctorName,
		SlotDate:   a.DateKey.String(),
		SlotTime:   a.Time.String(),
		Amount:     a.Amount,
		Paid:       a.Paid,
		Cancelled:  a.Cancelled,
		Completed:  a.Completed,
		CanBePaid:  a.CanBePaid(),
	}
	if !a.BookedAt.IsZero() {
		bookedAt := a.BookedAt
		resp.BookedAt = &bookedAt
	}
	return resp
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// AttemptResponse запись журнала попыток бронирования
type AttemptResponse struct {
	ID        int64     `json:"id"`
	DoctorID  string    `json:"doctorId"`
	SlotDate  string    `json:"slotDate"`
	SlotTime  string    `json:"slotTime"`
	Outcome   string    `json:"outcome"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AttemptListResponse список попыток бронирования
type AttemptListResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
	Total    int               `json:"total"`
}

// FromDomainAttemptList конвертирует журнал попыток
func FromDomainAttemptList(list []*domain.BookingAttempt) *AttemptListResponse {
	result := make([]AttemptResponse, 0, len(list))
	for _, a := range list {
		result = append(result, AttemptResponse{
			ID:        a.ID,
			DoctorID:  a.DoctorID,
			SlotDate:  a.DateKey.String(),
			SlotTime:  a.Time.String(),
			Outcome:   a.Outcome,
			Message:   a.Message,
			CreatedAt: a.CreatedAt,
		})
	}
	return &AttemptListResponse{
		Attempts: result,
		Total:    len(result),
	}
}
