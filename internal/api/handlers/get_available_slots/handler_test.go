package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/doctors/{doctorId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	slot, err := domain.NewSlot(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{DoctorID: "doc-1"}).Return(&getAvailableSlots.Response{
		DoctorID:  "doc-1",
		Available: true,
		Days: []domain.Day{{
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DateKey: "1_3_2024",
			Slots:   []domain.Slot{slot},
		}},
	}, nil)

	rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/doctors/doc-1/available-slots")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	require.Len(t, body.Days, 1)
	assert.Equal(t, "1_3_2024", body.Days[0].DateKey)
	assert.Equal(t, "10:00 AM", body.Days[0].Slots[0].Time)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: getAvailableSlots.ErrDoctorNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid", err: getAvailableSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "backend down", err: getAvailableSlots.ErrBackendUnavailable, wantStatus: http.StatusBadGateway},
		{name: "internal", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/doctors/doc-1/available-slots")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
