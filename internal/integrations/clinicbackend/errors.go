package clinicbackend

import "errors"

var (
	// ErrUnauthorized возвращается, когда бэкенд не принял токен сессии
	ErrUnauthorized = errors.New("clinicbackend client: unauthorized")

	// ErrSlotUnavailable возвращается, когда слот уже занят другим запросом
	ErrSlotUnavailable = errors.New("clinicbackend client: slot unavailable")

	// ErrDoctorUnavailable возвращается, когда врач не принимает записи
	ErrDoctorUnavailable = errors.New("clinicbackend client: doctor unavailable")

	// ErrNotFound возвращается, когда врач или запись не найдены
	ErrNotFound = errors.New("clinicbackend client: not found")

	// ErrRejected возвращается, когда бэкенд отклонил запрос по иной причине
	ErrRejected = errors.New("clinicbackend client: request rejected")

	// ErrUnavailable возвращается при сетевых ошибках и ошибках 5xx
	ErrUnavailable = errors.New("clinicbackend client: backend unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("clinicbackend client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinicbackend client: internal error")
)
