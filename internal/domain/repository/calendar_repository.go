package repository

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCalendarNotFound is returned when a calendar lookup matches nothing
// visible to the requesting account.
var ErrCalendarNotFound = errors.New("calendar not found")

// CalendarRepository defines persistence operations for calendars.
type CalendarRepository interface {
	// Create persists a new calendar for its owning user.
	Create(ctx context.Context, calendar *entity.Calendar) error

	// FindForUser retrieves a calendar only if it belongs to the given user.
	FindForUser(ctx context.Context, userID, calendarID uuid.UUID) (*entity.Calendar, error)

	// ListByUser returns all calendars of a user in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Calendar, error)
}

// EventRepository defines persistence operations for calendar events.
type EventRepository interface {
	// Create persists a new event in a calendar.
	Create(ctx context.Context, event *entity.Event) error

	// ListByCalendar returns all events of one calendar in creation order.
	ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]*entity.Event, error)
}
