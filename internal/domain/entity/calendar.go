package entity

import (
	"time"

	"github.com/google/uuid"
)

// Calendar is a collection of events owned by exactly one user.
type Calendar struct {
	ID        uuid.UUID // The unique identifier of the calendar.
	UserID    uuid.UUID // The owning account.
	Name      string    // Display name, e.g. "work".
	Color     string    // Optional display color.
	Timezone  string    // Optional IANA timezone name.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is a single calendar entry. The iCalendar component is stored as
// raw text exactly as submitted, so the feed can reproduce it byte for
// byte without re-serializing.
type Event struct {
	ID         uuid.UUID // The unique identifier of the event record.
	CalendarID uuid.UUID // The calendar this event belongs to.
	UID        string    // The iCalendar UID property, used for client-side syncing.
	Summary    string    // Extracted SUMMARY, kept for listings.
	RawICal    string    // The full BEGIN:VEVENT..END:VEVENT component text.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
