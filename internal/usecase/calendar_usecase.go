package usecase

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCalendarInput defines the data required to create a calendar.
type CreateCalendarInput struct {
	UserID   uuid.UUID
	Name     string
	Color    string
	Timezone string
}

// CreateEventInput defines the data required to add an event to a calendar.
// The component text is stored verbatim; UID and summary are extracted
// from it for listings.
type CreateEventInput struct {
	UserID     uuid.UUID
	CalendarID uuid.UUID
	RawICal    string
}

// CalendarUsecase defines calendar and event management operations. Every
// operation is scoped to the authenticated account: a calendar belonging
// to someone else behaves exactly like a missing one.
type CalendarUsecase interface {
	CreateCalendar(ctx context.Context, input *CreateCalendarInput) (*entity.Calendar, error)
	ListCalendars(ctx context.Context, userID uuid.UUID) ([]*entity.Calendar, error)

	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	ListEvents(ctx context.Context, userID, calendarID uuid.UUID) ([]*entity.Event, error)
}
