package create_booking

import (
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	Session  domain.Session  // Сессия передается явно, без глобального состояния
	DoctorID string          // ID врача
	DateKey  types.DateKey   // Ключ дня ("1_3_2024")
	Time     types.TimeLabel // Метка времени ("2:30 PM")
}

// Response модель ответа на успешное бронирование
type Response struct {
	DoctorID string
	DateKey  types.DateKey
	Time     types.TimeLabel
	Message  string       // Сообщение бэкенда
	Days     []domain.Day // Свободные дни после бронирования (nil, если обновить не удалось)
}
