package usecase

import "context"

// FeedOutput is a rendered iCalendar document ready to serve.
type FeedOutput struct {
	// Body is the complete VCALENDAR text, CRLF line endings.
	Body string

	// CalendarName is the display name of the shared calendar, used for
	// the download filename.
	CalendarName string
}

// FeedUsecase resolves a presented share token to a calendar feed. It is
// the only anonymous entry point of the service.
type FeedUsecase interface {
	// ResolveFeed authorizes the token and renders the calendar it grants
	// access to. Malformed tokens, unknown tokens, and hash mismatches are
	// indistinguishable to the caller: all surface as the single opaque
	// unauthorized error.
	ResolveFeed(ctx context.Context, token string) (*FeedOutput, error)
}
