package create_payment_order

import "errors"

var (
	// ErrAuthRequired возвращается, когда сессия отсутствует или отклонена бэкендом
	ErrAuthRequired = errors.New("create_payment_order: authentication required")

	// ErrAppointmentNotFound возвращается, когда запись не найдена у пользователя
	ErrAppointmentNotFound = errors.New("create_payment_order: appointment not found")

	// ErrAlreadyPaid возвращается, когда запись уже оплачена
	ErrAlreadyPaid = errors.New("create_payment_order: appointment is already paid")

	// ErrAppointmentInactive возвращается, когда запись отменена или завершена
	ErrAppointmentInactive = errors.New("create_payment_order: appointment is cancelled or completed")

	// ErrRejected возвращается, когда бэкенд отказал в создании заказа
	ErrRejected = errors.New("create_payment_order: payment order rejected")

	// ErrBackendUnavailable возвращается, когда бэкенд клиники недоступен
	ErrBackendUnavailable = errors.New("create_payment_order: clinic backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_order: internal error")
)
