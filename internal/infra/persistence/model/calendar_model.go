package model

import (
	"time"

	"github.com/google/uuid"
)

// CalendarModel mirrors the 'calendars' table.
type CalendarModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Color     string    `gorm:"type:varchar(32)"`
	Timezone  string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Events []CalendarEventModel `gorm:"foreignKey:CalendarID"`
}

// TableName explicitly sets the table name for GORM.
func (CalendarModel) TableName() string {
	return "calendars"
}

// CalendarEventModel mirrors the 'calendar_events' table. The iCalendar
// component is stored verbatim in raw_ical so feeds reproduce it byte
// for byte.
type CalendarEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CalendarID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_calendar_events_calendar_uid"`
	UID        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_calendar_events_calendar_uid"`
	Summary    string    `gorm:"type:varchar(1024)"`
	RawICal    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
