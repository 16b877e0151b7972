package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

type mockClinicClient struct {
	mock.Mock
}

func (m *mockClinicClient) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if d := args.Get(0); d != nil {
		return d.(*domain.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClinicClient) BookAppointment(ctx context.Context, session domain.Session, doctorID string, dateKey types.DateKey, label types.TimeLabel) (string, error) {
	args := m.Called(ctx, session, doctorID, dateKey, label)
	return args.String(0), args.Error(1)
}

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	args := m.Called(ctx, attempt)
	if a := args.Get(0); a != nil {
		return a.(*domain.BookingAttempt), args.Error(1)
	}
	return nil, args.Error(1)
}

type outcomeCounter map[string]int

func (c outcomeCounter) RecordBookingOutcome(outcome string) {
	c[outcome]++
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var (
	testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	session = domain.Session{Token: "token-1"}
)

func newTestUseCase(client ClinicClient, journal JournalRepository, outcomes OutcomeRecorder) *UseCase {
	return NewUseCase(client, journal, outcomes, domain.DefaultWorkingHours(time.UTC), logger.Nop()).
		WithTimeProvider(fixedTime{now: testNow})
}

func validRequest() *Request {
	return &Request{
		Session:  session,
		DoctorID: "doc-1",
		DateKey:  "1_3_2024",
		Time:     "2:30 PM",
	}
}

func freeDoctor() *domain.Doctor {
	return &domain.Doctor{ID: "doc-1", Available: true, Booked: domain.BookedIndex{}}
}

func TestUseCase_Execute_Success(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil).Once()
	client.On("BookAppointment", mock.Anything, session, "doc-1", types.DateKey("1_3_2024"), types.TimeLabel("2:30 PM")).
		Return("Appointment Booked", nil).Once()
	client.On("GetDoctor", mock.Anything, "doc-1").Return(&domain.Doctor{
		ID:        "doc-1",
		Available: true,
		Booked:    domain.BookedIndex{"1_3_2024": {"2:30 PM"}},
	}, nil).Once()

	journal := &mockJournal{}
	journal.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.BookingAttempt) bool {
		return a.Outcome == domain.OutcomeBooked && a.Time == "2:30 PM"
	})).Return(&domain.BookingAttempt{ID: 1}, nil).Once()

	outcomes := outcomeCounter{}
	uc := newTestUseCase(client, journal, outcomes)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Appointment Booked", resp.Message)
	require.NotEmpty(t, resp.Days)
	assert.False(t, resp.Days[0].Has("2:30 PM"))
	assert.Equal(t, 1, outcomes[domain.OutcomeBooked])
	client.AssertExpectations(t)
	journal.AssertExpectations(t)
}

func TestUseCase_Execute_NormalizesLabel(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil)
	client.On("BookAppointment", mock.Anything, session, "doc-1", types.DateKey("1_3_2024"), types.TimeLabel("2:30 PM")).
		Return("ok", nil).Once()

	req := validRequest()
	req.Time = "02:30 pm"
	req.DateKey = "01_03_2024"

	_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), req)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUseCase_Execute_NoTimeSelected(t *testing.T) {
	client := &mockClinicClient{}
	outcomes := outcomeCounter{}

	req := validRequest()
	req.Time = ""

	_, err := newTestUseCase(client, nil, outcomes).Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoTimeSelected)
	assert.Equal(t, 1, outcomes[domain.OutcomeNoTime])
	client.AssertNotCalled(t, "GetDoctor", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_AuthRequired(t *testing.T) {
	expired := testNow.Add(-time.Minute)

	tests := []struct {
		name    string
		session domain.Session
	}{
		{name: "no token", session: domain.Session{}},
		{name: "expired token", session: domain.Session{Token: "jwt", ExpiresAt: &expired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClinicClient{}

			req := validRequest()
			req.Session = tt.session

			_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrAuthRequired)
			client.AssertNotCalled(t, "GetDoctor", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_InvalidTimeSlot(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *Request)
		needFetch bool
	}{
		{name: "bad label", mutate: func(r *Request) { r.Time = "25:99" }},
		{name: "bad date key", mutate: func(r *Request) { r.DateKey = "2024-03-01" }},
		{name: "outside working hours", mutate: func(r *Request) { r.Time = "9:00 PM" }, needFetch: true},
		{name: "off grid", mutate: func(r *Request) { r.Time = "2:15 PM" }, needFetch: true},
		{name: "beyond horizon", mutate: func(r *Request) { r.DateKey = "8_3_2024" }, needFetch: true},
		{name: "in the past", mutate: func(r *Request) { r.DateKey = "29_2_2024" }, needFetch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClinicClient{}
			if tt.needFetch {
				client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil).Once()
			}

			req := validRequest()
			tt.mutate(req)

			_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			client.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			client.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_StaleSelection(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(&domain.Doctor{
		ID:        "doc-1",
		Available: true,
		Booked:    domain.BookedIndex{"1_3_2024": {"2:30 PM"}},
	}, nil).Once()

	_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	require.NotEmpty(t, conflict.Days)
	assert.False(t, conflict.Days[0].Has("2:30 PM"))
	client.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_DoctorUnavailable(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(&domain.Doctor{ID: "doc-1", Available: false}, nil).Once()

	_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDoctorUnavailable)
	client.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ConcurrentConflict(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil).Once()
	client.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: Slot Not Available", clinicbackend.ErrSlotUnavailable)).Once()
	client.On("GetDoctor", mock.Anything, "doc-1").Return(&domain.Doctor{
		ID:        "doc-1",
		Available: true,
		Booked:    domain.BookedIndex{"1_3_2024": {"2:30 PM"}},
	}, nil).Once()

	outcomes := outcomeCounter{}
	_, err := newTestUseCase(client, nil, outcomes).Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, types.TimeLabel("2:30 PM"), conflict.Time)
	require.NotEmpty(t, conflict.Days)
	assert.False(t, conflict.Days[0].Has("2:30 PM"))
	assert.Equal(t, 1, outcomes[domain.OutcomeConflict])
	client.AssertNumberOfCalls(t, "GetDoctor", 2)
	client.AssertNumberOfCalls(t, "BookAppointment", 1)
}

func TestUseCase_Execute_ConflictRefreshFails(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil).Once()
	client.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", clinicbackend.ErrSlotUnavailable).Once()
	client.On("GetDoctor", mock.Anything, "doc-1").Return(nil, clinicbackend.ErrUnavailable).Once()

	_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Nil(t, conflict.Days)
}

func TestUseCase_Execute_SubmitErrors(t *testing.T) {
	tests := []struct {
		name      string
		submitErr error
		want      error
	}{
		{name: "transport failure", submitErr: fmt.Errorf("%w: timeout", clinicbackend.ErrUnavailable), want: ErrBackendUnavailable},
		{name: "session rejected", submitErr: clinicbackend.ErrUnauthorized, want: ErrAuthRequired},
		{name: "doctor unavailable", submitErr: clinicbackend.ErrDoctorUnavailable, want: ErrDoctorUnavailable},
		{name: "doctor not found", submitErr: clinicbackend.ErrNotFound, want: ErrDoctorNotFound},
		{name: "rejected", submitErr: clinicbackend.ErrRejected, want: ErrRejected},
		{name: "unknown", submitErr: clinicbackend.ErrInvalidResponse, want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClinicClient{}
			client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil).Once()
			client.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return("", tt.submitErr).Once()

			_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.want)
			client.AssertNumberOfCalls(t, "BookAppointment", 1)
		})
	}
}

func TestUseCase_Execute_FetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		fetchErr error
		want     error
	}{
		{name: "not found", fetchErr: clinicbackend.ErrNotFound, want: ErrDoctorNotFound},
		{name: "unavailable", fetchErr: clinicbackend.ErrUnavailable, want: ErrBackendUnavailable},
		{name: "other", fetchErr: clinicbackend.ErrInvalidResponse, want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClinicClient{}
			client.On("GetDoctor", mock.Anything, "doc-1").Return(nil, tt.fetchErr).Once()

			_, err := newTestUseCase(client, nil, nil).Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUseCase_Execute_InProgress(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})

	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil)
	client.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-unblock
		}).
		Return("ok", nil).Once()

	uc := newTestUseCase(client, nil, nil)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), validRequest())
		done <- err
	}()

	<-started
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingInProgress)

	close(unblock)
	require.NoError(t, <-done)

	assert.True(t, uc.guard.acquire(session.Token, "doc-1"))
}

func TestUseCase_Execute_JournalFailureIgnored(t *testing.T) {
	client := &mockClinicClient{}
	client.On("GetDoctor", mock.Anything, "doc-1").Return(freeDoctor(), nil)
	client.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("ok", nil).Once()

	journal := &mockJournal{}
	journal.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := newTestUseCase(client, journal, nil).Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	journal.AssertNumberOfCalls(t, "Create", 1)
}

func TestInFlight(t *testing.T) {
	g := newInFlight()

	require.True(t, g.acquire("token-1", "doc-1"))
	assert.False(t, g.acquire("token-1", "doc-1"))
	assert.True(t, g.acquire("token-2", "doc-1"))
	assert.True(t, g.acquire("token-1", "doc-2"))

	g.release("token-1", "doc-1")
	assert.True(t, g.acquire("token-1", "doc-1"))
}

func TestConflictError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ConflictError{DateKey: "1_3_2024", Time: "2:30 PM"})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), "2:30 PM on 1_3_2024")
}
