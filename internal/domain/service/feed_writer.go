package service

import "calshare/internal/domain/entity"

// FeedWriter renders a calendar and its events into an iCalendar document.
type FeedWriter interface {
	Render(calendar *entity.Calendar, events []*entity.Event) string
}
