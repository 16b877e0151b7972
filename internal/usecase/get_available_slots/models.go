package get_available_slots

import "github.com/m04kA/SMC-DoctorBooking/internal/domain"

// Request модель запроса на получение свободных слотов врача
type Request struct {
	DoctorID string
}

// Response модель ответа со свободными слотами на горизонт записи
type Response struct {
	DoctorID   string
	DoctorName string
	Speciality string
	Fees       float64
	Available  bool         // Принимает ли врач записи
	Days       []domain.Day // Только дни, где есть хотя бы один свободный слот
}
