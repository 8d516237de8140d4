package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "calshare/internal/delivery/context"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	calendarRepo repository.CalendarRepository
	eventRepo    repository.EventRepository
	logger       *slog.Logger
}

// CalendarServiceParams holds dependencies for calendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	CalendarRepo repository.CalendarRepository
	EventRepo    repository.EventRepository
	Logger       *slog.Logger
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	return &calendarService{
		calendarRepo: params.CalendarRepo,
		eventRepo:    params.EventRepo,
		logger:       params.Logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCalendar creates a calendar owned by the authenticated account.
func (srv *calendarService) CreateCalendar(ctx context.Context, input *usecase.CreateCalendarInput) (*entity.Calendar, error) {
	calendar := &entity.Calendar{
		UserID:   input.UserID,
		Name:     input.Name,
		Color:    input.Color,
		Timezone: input.Timezone,
	}

	if err := srv.calendarRepo.Create(ctx, calendar); err != nil {
		srv.log(ctx).Error("Failed to create calendar", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create calendar")
	}

	srv.log(ctx).Debug("Calendar created", slog.Any("calendarID", calendar.ID), slog.Any("userID", input.UserID))

	return calendar, nil
}

// ListCalendars returns the account's calendars in creation order.
func (srv *calendarService) ListCalendars(ctx context.Context, userID uuid.UUID) ([]*entity.Calendar, error) {
	calendars, err := srv.calendarRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list calendars", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list calendars")
	}

	return calendars, nil
}

// CreateEvent stores one iCalendar component in a calendar the account
// owns. The component text is kept verbatim; UID and SUMMARY are lifted
// out for listings only.
func (srv *calendarService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if _, err := srv.calendarRepo.FindForUser(ctx, input.UserID, input.CalendarID); err != nil {
		if errors.Is(err, repository.ErrCalendarNotFound) {
			return nil, domainerrors.ErrCalendarNotFound.WrapMessage("calendar not found")
		}

		return nil, errors.Wrap(err, "failed to load calendar")
	}

	uid, summary, err := parseEventComponent(input.RawICal)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	event := &entity.Event{
		CalendarID: input.CalendarID,
		UID:        uid,
		Summary:    summary,
		RawICal:    input.RawICal,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to create event", slog.Any("calendarID", input.CalendarID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Debug("Event created", slog.Any("eventID", event.ID), slog.String("uid", uid))

	return event, nil
}

// ListEvents returns the events of one owned calendar in creation order.
func (srv *calendarService) ListEvents(ctx context.Context, userID, calendarID uuid.UUID) ([]*entity.Event, error) {
	if _, err := srv.calendarRepo.FindForUser(ctx, userID, calendarID); err != nil {
		if errors.Is(err, repository.ErrCalendarNotFound) {
			return nil, domainerrors.ErrCalendarNotFound.WrapMessage("calendar not found")
		}

		return nil, errors.Wrap(err, "failed to load calendar")
	}

	events, err := srv.eventRepo.ListByCalendar(ctx, calendarID)
	if err != nil {
		srv.log(ctx).Error("Failed to list events", slog.Any("calendarID", calendarID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// parseEventComponent checks that the submitted text is one VEVENT
// component and extracts its UID and SUMMARY properties.
func parseEventComponent(raw string) (uid, summary string, err error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	if len(lines) < 2 || lines[0] != "BEGIN:VEVENT" || lines[len(lines)-1] != "END:VEVENT" {
		return "", "", errors.New("event must be a single VEVENT component")
	}

	for _, line := range lines[1 : len(lines)-1] {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		// Property parameters (e.g. "SUMMARY;LANGUAGE=en") count too.
		name, _, _ = strings.Cut(name, ";")
		switch strings.ToUpper(name) {
		case "UID":
			uid = value
		case "SUMMARY":
			summary = value
		}
	}

	if uid == "" {
		return "", "", errors.New("event component is missing a UID property")
	}

	return uid, summary, nil
}
