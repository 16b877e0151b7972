package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена среди записей пользователя
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAuthRequired возвращается, когда сессия отсутствует или отклонена бэкендом
	ErrAuthRequired = errors.New("authentication required")

	// ErrJournalDisabled возвращается, когда журнал попыток не подключен
	ErrJournalDisabled = errors.New("booking journal is disabled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда бэкенд клиники недоступен
	ErrBackendUnavailable = errors.New("clinic backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
