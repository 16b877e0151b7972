package clinicbackend

// Типы ошибок в поле errorKind ответа бэкенда
const (
	KindSlotUnavailable   = "slot_unavailable"
	KindUnauthorized      = "unauthorized"
	KindDoctorUnavailable = "doctor_unavailable"
	KindNotFound          = "not_found"
	KindInvalidRequest    = "invalid_request"
)

// Envelope общая часть всех ответов бэкенда
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorKind string `json:"errorKind,omitempty"`
}

// DoctorResponse ответ на запрос карточки врача
type DoctorResponse struct {
	Envelope
	Doctor *Doctor `json:"doctor"`
}

// Doctor карточка врача из бэкенда
type Doctor struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Speciality  string              `json:"speciality"`
	Fees        float64             `json:"fees"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"` // "1_3_2024" -> ["2:30 PM"]
}

// BookAppointmentRequest тело запроса на бронирование
type BookAppointmentRequest struct {
	DocID    string `json:"docId"`
	SlotDate string `json:"slotDate"`
	SlotTime string `json:"slotTime"`
}

// AppointmentsResponse ответ со списком записей пользователя
type AppointmentsResponse struct {
	Envelope
	Appointments []Appointment `json:"appointments"`
}

// Appointment запись пользователя из бэкенда
type Appointment struct {
	ID          string     `json:"_id"`
	UserID      string     `json:"userId"`
	DocID       string     `json:"docId"`
	SlotDate    string     `json:"slotDate"`
	SlotTime    string     `json:"slotTime"`
	Amount      float64    `json:"amount"`
	Date        int64      `json:"date"` // unix ms
	Payment     bool       `json:"payment"`
	Cancelled   bool       `json:"cancelled"`
	IsCompleted bool       `json:"isCompleted"`
	DocData     DoctorInfo `json:"docData"`
}

// DoctorInfo денормализованные данные врача в записи
type DoctorInfo struct {
	Name string `json:"name"`
}

// PaymentOrderRequest тело запроса на создание заказа оплаты
type PaymentOrderRequest struct {
	AppointmentID string `json:"appointmentId"`
}

// PaymentOrderResponse ответ с заказом оплаты
type PaymentOrderResponse struct {
	Envelope
	Order *PaymentOrder `json:"order"`
}

// PaymentOrder заказ оплаты
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// VerifyPaymentRequest подтверждение провайдера оплаты
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}
