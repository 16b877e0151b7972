package clinicbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

const (
	headerToken     = "token"
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// Client клиент для работы с бэкендом клиники
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   CallObserver
}

// NewClient создает новый экземпляр клиента бэкенда клиники
func NewClient(baseURL string, timeout time.Duration, log Logger, observer CallObserver) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// GetDoctor получает карточку врача вместе с индексом занятых слотов
func (c *Client) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	path := "/api/doctor/" + url.PathEscape(doctorID)

	var resp DoctorResponse
	if err := c.do(ctx, "get_doctor", http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Doctor == nil {
		return nil, fmt.Errorf("%w: doctor is missing in response", ErrInvalidResponse)
	}

	return c.toDomainDoctor(resp.Doctor), nil
}

// BookAppointment создает запись к врачу на слот (dateKey, label).
// Возвращает сообщение бэкенда об успехе.
func (c *Client) BookAppointment(
	ctx context.Context,
	session domain.Session,
	doctorID string,
	dateKey types.DateKey,
	label types.TimeLabel,
) (string, error) {
	body := BookAppointmentRequest{
		DocID:    doctorID,
		SlotDate: dateKey.String(),
		SlotTime: label.String(),
	}

	var resp Envelope
	if err := c.do(ctx, "book_appointment", http.MethodPost, "/api/user/book-appointment", session.Token, body, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// ListAppointments получает записи пользователя сессии
func (c *Client) ListAppointments(ctx context.Context, session domain.Session) ([]*domain.Appointment, error) {
	var resp AppointmentsResponse
	if err := c.do(ctx, "list_appointments", http.MethodGet, "/api/user/appointments", session.Token, nil, &resp); err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(resp.Appointments))
	for i := range resp.Appointments {
		result = append(result, c.toDomainAppointment(&resp.Appointments[i]))
	}

	return result, nil
}

// CreatePaymentOrder запрашивает заказ оплаты для записи
func (c *Client) CreatePaymentOrder(ctx context.Context, session domain.Session, appointmentID string) (*domain.PaymentOrder, error) {
	body := PaymentOrderRequest{AppointmentID: appointmentID}

	var resp PaymentOrderResponse
	if err := c.do(ctx, "create_payment_order", http.MethodPost, "/api/user/payment-order", session.Token, body, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil || resp.Order.ID == "" {
		return nil, fmt.Errorf("%w: order is missing in response", ErrInvalidResponse)
	}

	return &domain.PaymentOrder{
		ID:       resp.Order.ID,
		Amount:   resp.Order.Amount,
		Currency: resp.Order.Currency,
		Receipt:  resp.Order.Receipt,
	}, nil
}

// VerifyPayment передает подтверждение провайдера оплаты на проверку
func (c *Client) VerifyPayment(ctx context.Context, session domain.Session, confirmation domain.PaymentConfirmation) error {
	body := VerifyPaymentRequest{
		OrderID:   confirmation.OrderID,
		PaymentID: confirmation.PaymentID,
		Signature: confirmation.Signature,
	}

	var resp Envelope
	return c.do(ctx, "verify_payment", http.MethodPost, "/api/user/verify-payment", session.Token, body, &resp)
}

// do выполняет запрос и декодирует ответ в out.
// out должен содержать Envelope (напрямую или встроенный).
func (c *Client) do(ctx context.Context, operation, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if token != "" {
		req.Header.Set(headerToken, token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observer != nil {
		c.observer.ObserveBackendCall(operation, time.Since(started))
	}
	if err != nil {
		c.log.Error("clinicbackend: %s request_id=%s failed: %v", operation, requestID, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error("clinicbackend: %s request_id=%s status=%d", operation, requestID, resp.StatusCode)
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, truncate(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// Тело без JSON: классифицируем только по статус-коду
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return classify(resp.StatusCode, Envelope{})
		}
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	env, ok := envelopeOf(out)
	if !ok {
		return fmt.Errorf("%w: unsupported response type", ErrInternal)
	}

	if err := classify(resp.StatusCode, env); err != nil {
		c.log.Warn("clinicbackend: %s request_id=%s rejected: status=%d kind=%s message=%q",
			operation, requestID, resp.StatusCode, env.ErrorKind, env.Message)
		return err
	}

	return nil
}

// classify переводит ответ бэкенда в ошибку клиента.
// Источник правды - поле errorKind, при его отсутствии - статус-код.
func classify(status int, env Envelope) error {
	kind := env.ErrorKind
	if kind == "" {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindUnauthorized
		case http.StatusConflict:
			kind = KindSlotUnavailable
		case http.StatusNotFound:
			kind = KindNotFound
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			kind = KindInvalidRequest
		}
	}

	switch kind {
	case KindSlotUnavailable:
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, env.Message)
	case KindUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
	case KindDoctorUnavailable:
		return fmt.Errorf("%w: %s", ErrDoctorUnavailable, env.Message)
	case KindNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, env.Message)
	case KindInvalidRequest:
		return fmt.Errorf("%w: %s", ErrRejected, env.Message)
	case "":
	default:
		return fmt.Errorf("%w: kind=%s: %s", ErrRejected, kind, env.Message)
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, status)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrRejected, env.Message)
	}

	return nil
}

func envelopeOf(out interface{}) (Envelope, bool) {
	switch v := out.(type) {
	case *Envelope:
		return *v, true
	case *DoctorResponse:
		return v.Envelope, true
	case *AppointmentsResponse:
		return v.Envelope, true
	case *PaymentOrderResponse:
		return v.Envelope, true
	default:
		return Envelope{}, false
	}
}

// toDomainDoctor конвертирует карточку врача, нормализуя ключи и метки индекса
func (c *Client) toDomainDoctor(d *Doctor) *domain.Doctor {
	booked := make(domain.BookedIndex, len(d.SlotsBooked))

	for rawKey, rawLabels := range d.SlotsBooked {
		key, err := types.ParseDateKey(rawKey)
		if err != nil {
			c.log.Warn("clinicbackend: doctor id=%s has invalid date key %q, skipped", d.ID, rawKey)
			continue
		}

		for _, rawLabel := range rawLabels {
			label, err := types.ParseTimeLabel(rawLabel)
			if err != nil {
				c.log.Warn("clinicbackend: doctor id=%s has invalid time label %q on %s, skipped", d.ID, rawLabel, key)
				continue
			}
			booked[key] = append(booked[key], label)
		}
	}

	return &domain.Doctor{
		ID:         d.ID,
		Name:       d.Name,
		Speciality: d.Speciality,
		Fees:       d.Fees,
		Available:  d.Available,
		Booked:     booked,
	}
}

func (c *Client) toDomainAppointment(a *Appointment) *domain.Appointment {
	appointment := &domain.Appointment{
		ID:         a.ID,
		UserID:     a.UserID,
		DoctorID:   a.DocID,
		DoctorName: a.DocData.Name,
		Amount:     a.Amount,
		Paid:       a.Payment,
		Cancelled:  a.Cancelled,
		Completed:  a.IsCompleted,
	}

	if key, err := types.ParseDateKey(a.SlotDate); err == nil {
		appointment.DateKey = key
	} else {
		appointment.DateKey = types.DateKey(a.SlotDate)
	}
	if label, err := types.ParseTimeLabel(a.SlotTime); err == nil {
		appointment.Time = label
	} else {
		appointment.Time = types.TimeLabel(a.SlotTime)
	}
	if a.Date > 0 {
		appointment.BookedAt = time.UnixMilli(a.Date)
	}

	return appointment
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody])
	}
	return string(b)
}
