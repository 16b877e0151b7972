package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

func TestPrintDays(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	days := []domain.Day{{
		Date:    date,
		DateKey: types.NewDateKey(date),
		Slots: []domain.Slot{
			{DateTime: date.Add(10 * time.Hour), Time: types.NewTimeLabel(date.Add(10 * time.Hour))},
			{DateTime: date.Add(14*time.Hour + 30*time.Minute), Time: types.NewTimeLabel(date.Add(14*time.Hour + 30*time.Minute))},
		},
	}}

	var buf bytes.Buffer
	printDays(&buf, days)

	assert.Equal(t, "[0] Fri 1_3_2024: 10:00 AM, 2:30 PM\n", buf.String())
}

func TestPrintDays_Empty(t *testing.T) {
	var buf bytes.Buffer
	printDays(&buf, nil)

	assert.Equal(t, "no free slots\n", buf.String())
}
