package clinicbackend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

type callRecorder struct {
	operations []string
}

func (r *callRecorder) ObserveBackendCall(operation string, _ time.Duration) {
	r.operations = append(r.operations, operation)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *callRecorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := &callRecorder{}
	return NewClient(server.URL, 2*time.Second, logger.Nop(), recorder), recorder
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_GetDoctor(t *testing.T) {
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/doctor/doc-1", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(headerRequestID))

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"doctor": map[string]interface{}{
				"_id":        "doc-1",
				"name":       "Dr. Richard James",
				"speciality": "General physician",
				"fees":       50,
				"available":  true,
				"slots_booked": map[string][]string{
					"01_03_2024": {"02:30 pm", "3:00 PM", "25:00"},
					"bad-key":    {"4:00 PM"},
				},
			},
		})
	})

	doctor, err := client.GetDoctor(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "doc-1", doctor.ID)
	assert.True(t, doctor.Available)
	assert.Equal(t, []types.TimeLabel{"2:30 PM", "3:00 PM"}, doctor.Booked["1_3_2024"])
	assert.Len(t, doctor.Booked, 1)
	assert.Equal(t, []string{"get_doctor"}, recorder.operations)
}

func TestClient_GetDoctor_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Envelope{Success: false, Message: "Doctor not found"})
	})

	_, err := client.GetDoctor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_BookAppointment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/book-appointment", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(headerToken))

		var body BookAppointmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, BookAppointmentRequest{DocID: "doc-1", SlotDate: "1_3_2024", SlotTime: "2:30 PM"}, body)

		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Appointment Booked"})
	})

	msg, err := client.BookAppointment(context.Background(), domain.Session{Token: "secret"}, "doc-1", "1_3_2024", "2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "Appointment Booked", msg)
}

func TestClient_BookAppointment_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   interface{}
		want   error
	}{
		{
			name:   "error kind wins over message",
			status: http.StatusOK,
			body:   Envelope{Success: false, Message: "Slot Not Available", ErrorKind: KindSlotUnavailable},
			want:   ErrSlotUnavailable,
		},
		{
			name:   "conflict status without kind",
			status: http.StatusConflict,
			body:   Envelope{Success: false, Message: "taken"},
			want:   ErrSlotUnavailable,
		},
		{
			name:   "unauthorized status",
			status: http.StatusUnauthorized,
			body:   Envelope{Success: false, Message: "Not Authorized Login Again"},
			want:   ErrUnauthorized,
		},
		{
			name:   "doctor unavailable kind",
			status: http.StatusOK,
			body:   Envelope{Success: false, Message: "Doctor Not Available", ErrorKind: KindDoctorUnavailable},
			want:   ErrDoctorUnavailable,
		},
		{
			name:   "rejected without kind",
			status: http.StatusOK,
			body:   Envelope{Success: false, Message: "something else"},
			want:   ErrRejected,
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			body:   Envelope{Success: false},
			want:   ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.BookAppointment(context.Background(), domain.Session{Token: "t"}, "doc-1", "1_3_2024", "2:30 PM")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, logger.Nop(), nil)

	_, err := client.GetDoctor(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := client.GetDoctor(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ListAppointments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/appointments", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(headerToken))

		writeJSON(w, http.StatusOK, AppointmentsResponse{
			Envelope: Envelope{Success: true},
			Appointments: []Appointment{
				{
					ID:       "apt-1",
					DocID:    "doc-1",
					SlotDate: "1_3_2024",
					SlotTime: "2:30 PM",
					Amount:   50,
					Date:     1709294400000,
					DocData:  DoctorInfo{Name: "Dr. Richard James"},
				},
			},
		})
	})

	appointments, err := client.ListAppointments(context.Background(), domain.Session{Token: "secret"})
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	apt := appointments[0]
	assert.Equal(t, "apt-1", apt.ID)
	assert.Equal(t, types.DateKey("1_3_2024"), apt.DateKey)
	assert.Equal(t, types.TimeLabel("2:30 PM"), apt.Time)
	assert.Equal(t, "Dr. Richard James", apt.DoctorName)
	assert.True(t, apt.CanBePaid())
	assert.Equal(t, int64(1709294400000), apt.BookedAt.UnixMilli())
}

func TestClient_CreatePaymentOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body PaymentOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "apt-1", body.AppointmentID)

		writeJSON(w, http.StatusOK, PaymentOrderResponse{
			Envelope: Envelope{Success: true},
			Order:    &PaymentOrder{ID: "order_1", Amount: 5000, Currency: "INR", Receipt: "apt-1"},
		})
	})

	order, err := client.CreatePaymentOrder(context.Background(), domain.Session{Token: "t"}, "apt-1")
	require.NoError(t, err)
	assert.Equal(t, &domain.PaymentOrder{ID: "order_1", Amount: 5000, Currency: "INR", Receipt: "apt-1"}, order)
}

func TestClient_CreatePaymentOrder_MissingOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Envelope{Success: true})
	})

	_, err := client.CreatePaymentOrder(context.Background(), domain.Session{Token: "t"}, "apt-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_VerifyPayment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body VerifyPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sig", body.Signature)

		writeJSON(w, http.StatusOK, Envelope{Success: false, Message: "Payment Failed"})
	})

	err := client.VerifyPayment(context.Background(), domain.Session{Token: "t"}, domain.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, ErrRejected)
}
