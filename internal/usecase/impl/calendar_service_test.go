package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	mockRepo "calshare/internal/mocks/repository"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCalendarService(t *testing.T) (usecase.CalendarUsecase, *mockRepo.MockCalendarRepository, *mockRepo.MockEventRepository) {
	t.Helper()

	calendarRepo := mockRepo.NewMockCalendarRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)

	service := NewCalendarService(CalendarServiceParams{
		CalendarRepo: calendarRepo,
		EventRepo:    eventRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, calendarRepo, eventRepo
}

func TestCalendarService_CreateCalendar_Success(t *testing.T) {
	service, calendarRepo, _ := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()

	calendarRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Calendar")).
		RunAndReturn(func(_ context.Context, calendar *entity.Calendar) error {
			assert.Equal(t, userID, calendar.UserID)
			assert.Equal(t, "work", calendar.Name)
			calendar.ID = calendarID
			return nil
		})

	calendar, err := service.CreateCalendar(ctx, &usecase.CreateCalendarInput{
		UserID:   userID,
		Name:     "work",
		Color:    "#336699",
		Timezone: "Asia/Taipei",
	})

	require.NoError(t, err)
	assert.Equal(t, calendarID, calendar.ID)
	assert.Equal(t, "Asia/Taipei", calendar.Timezone)
}

func TestCalendarService_ListCalendars_Success(t *testing.T) {
	service, calendarRepo, _ := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendars := []*entity.Calendar{
		{ID: uuid.New(), UserID: userID, Name: "work"},
		{ID: uuid.New(), UserID: userID, Name: "home"},
	}

	calendarRepo.EXPECT().ListByUser(ctx, userID).Return(calendars, nil)

	got, err := service.ListCalendars(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCalendarService_CreateEvent_Success(t *testing.T) {
	service, calendarRepo, eventRepo := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	raw := "BEGIN:VEVENT\r\nUID:event-1@example.com\r\nSUMMARY:Standup\r\nDTSTART:20260901T090000Z\r\nEND:VEVENT"

	calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)
	eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, event *entity.Event) error {
			event.ID = uuid.New()
			return nil
		})

	event, err := service.CreateEvent(ctx, &usecase.CreateEventInput{
		UserID:     userID,
		CalendarID: calendarID,
		RawICal:    raw,
	})

	require.NoError(t, err)
	assert.Equal(t, "event-1@example.com", event.UID)
	assert.Equal(t, "Standup", event.Summary)
	assert.Equal(t, raw, event.RawICal)
}

func TestCalendarService_CreateEvent_CalendarNotOwned(t *testing.T) {
	service, calendarRepo, _ := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()

	calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(nil, repository.ErrCalendarNotFound)

	_, err := service.CreateEvent(ctx, &usecase.CreateEventInput{
		UserID:     userID,
		CalendarID: calendarID,
		RawICal:    "BEGIN:VEVENT\nUID:x\nEND:VEVENT",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCalendarNotFound)
}

func TestCalendarService_CreateEvent_InvalidComponent(t *testing.T) {
	service, calendarRepo, _ := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()

	calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)

	_, err := service.CreateEvent(ctx, &usecase.CreateEventInput{
		UserID:     userID,
		CalendarID: calendarID,
		RawICal:    "BEGIN:VEVENT\nSUMMARY:no uid here\nEND:VEVENT",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCalendarService_ListEvents_Success(t *testing.T) {
	service, calendarRepo, eventRepo := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	events := []*entity.Event{{ID: uuid.New(), CalendarID: calendarID, UID: "a"}}

	calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)
	eventRepo.EXPECT().ListByCalendar(ctx, calendarID).Return(events, nil)

	got, err := service.ListEvents(ctx, userID, calendarID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCalendarService_ListEvents_CalendarNotOwned(t *testing.T) {
	service, calendarRepo, _ := newCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()

	calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(nil, repository.ErrCalendarNotFound)

	_, err := service.ListEvents(ctx, userID, calendarID)

	assert.ErrorIs(t, err, domainerrors.ErrCalendarNotFound)
}

func TestParseEventComponent(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantUID     string
		wantSummary string
		wantErr     bool
	}{
		{
			name:        "crlf component",
			raw:         "BEGIN:VEVENT\r\nUID:u1\r\nSUMMARY:Lunch\r\nEND:VEVENT",
			wantUID:     "u1",
			wantSummary: "Lunch",
		},
		{
			name:        "lf component",
			raw:         "BEGIN:VEVENT\nUID:u2\nEND:VEVENT",
			wantUID:     "u2",
			wantSummary: "",
		},
		{
			name:        "summary with property parameters",
			raw:         "BEGIN:VEVENT\nUID:u3\nSUMMARY;LANGUAGE=en:Review\nEND:VEVENT",
			wantUID:     "u3",
			wantSummary: "Review",
		},
		{
			name:        "lowercase property names",
			raw:         "BEGIN:VEVENT\nuid:u4\nsummary:Dinner\nEND:VEVENT",
			wantUID:     "u4",
			wantSummary: "Dinner",
		},
		{
			name:    "missing uid",
			raw:     "BEGIN:VEVENT\nSUMMARY:Lunch\nEND:VEVENT",
			wantErr: true,
		},
		{
			name:    "not a vevent",
			raw:     "BEGIN:VTODO\nUID:u5\nEND:VTODO",
			wantErr: true,
		},
		{
			name:    "truncated component",
			raw:     "BEGIN:VEVENT\nUID:u6",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, summary, err := parseEventComponent(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, uid)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}
