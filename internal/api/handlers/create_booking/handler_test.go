package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{"doctorId":"doc-1","slotDate":"1_3_2024","slotTime":"2:30 PM"}`

func post(h *Handler, body string, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if token != "" {
		r = r.WithContext(middleware.WithSession(r.Context(), domain.Session{Token: token}))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Session.Token == "token-1" && req.DoctorID == "doc-1" && req.Time == "2:30 PM"
	})).Return(&createBooking.Response{
		DoctorID: "doc-1",
		DateKey:  "1_3_2024",
		Time:     "2:30 PM",
		Message:  "Appointment Booked",
	}, nil)

	rec := post(NewHandler(uc, logger.Nop()), validBody, "token-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Appointment Booked", body.Message)
	assert.Equal(t, "2:30 PM", body.SlotTime)
	assert.NotNil(t, body.Days)
}

func TestHandler_Handle_Conflict(t *testing.T) {
	slot, err := domain.NewSlot(time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createBooking.ConflictError{
		DoctorID: "doc-1",
		DateKey:  "1_3_2024",
		Time:     "2:30 PM",
		Days: []domain.Day{{
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DateKey: "1_3_2024",
			Slots:   []domain.Slot{slot},
		}},
	})

	rec := post(NewHandler(uc, logger.Nop()), validBody, "token-1")
	require.Equal(t, http.StatusConflict, rec.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, msgSlotNotAvailable, body.Message)
	require.Len(t, body.Days, 1)
	assert.Equal(t, "3:00 PM", body.Days[0].Slots[0].Time)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "no time", err: createBooking.ErrNoTimeSelected, wantStatus: http.StatusBadRequest, wantMsg: msgNoTimeSelected},
		{name: "auth", err: createBooking.ErrAuthRequired, wantStatus: http.StatusUnauthorized, wantMsg: msgAuthRequired},
		{name: "in progress", err: createBooking.ErrBookingInProgress, wantStatus: http.StatusTooManyRequests, wantMsg: msgInProgress},
		{name: "invalid slot", err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidTimeSlot},
		{name: "doctor not found", err: createBooking.ErrDoctorNotFound, wantStatus: http.StatusNotFound, wantMsg: msgDoctorNotFound},
		{name: "doctor unavailable", err: createBooking.ErrDoctorUnavailable, wantStatus: http.StatusUnprocessableEntity, wantMsg: msgDoctorUnavailable},
		{name: "rejected", err: createBooking.ErrRejected, wantStatus: http.StatusBadRequest, wantMsg: msgBookingRejected},
		{name: "backend", err: createBooking.ErrBackendUnavailable, wantStatus: http.StatusBadGateway, wantMsg: msgBackendUnavailable},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, logger.Nop()), validBody, "token-1")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	uc := &mockUseCase{}

	rec := post(NewHandler(uc, logger.Nop()), `{"doctorId":`, "token-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_PassesEmptySession(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Session.Token == ""
	})).Return(nil, createBooking.ErrAuthRequired)

	rec := post(NewHandler(uc, logger.Nop()), validBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertExpectations(t)
}
