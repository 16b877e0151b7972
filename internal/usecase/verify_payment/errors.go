package verify_payment

import "errors"

var (
	// ErrAuthRequired возвращается, когда сессия отсутствует или отклонена бэкендом
	ErrAuthRequired = errors.New("verify_payment: authentication required")

	// ErrPaymentRejected возвращается, когда бэкенд не подтвердил оплату
	ErrPaymentRejected = errors.New("verify_payment: payment rejected")

	// ErrBackendUnavailable возвращается, когда бэкенд клиники недоступен
	ErrBackendUnavailable = errors.New("verify_payment: clinic backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_payment: internal error")
)
