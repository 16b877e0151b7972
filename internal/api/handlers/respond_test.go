package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "врач не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "врач не найден"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestFromDomainDays(t *testing.T) {
	slot, err := domain.NewSlot(time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	days := FromDomainDays([]domain.Day{{
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateKey: "1_3_2024",
		Slots:   []domain.Slot{slot},
	}})

	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Date)
	assert.Equal(t, "Fri", days[0].Weekday)
	assert.Equal(t, []SlotResponse{{DateTime: "2024-03-01T14:30:00Z", Time: "2:30 PM"}}, days[0].Slots)
}
