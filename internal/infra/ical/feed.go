// Package ical assembles iCalendar documents from stored event payloads.
package ical

import (
	"strings"

	"calshare/internal/domain/entity"
	"calshare/internal/domain/service"
)

const prodID = "-//calshare//calendar feed//EN"

type feedWriter struct{}

// NewFeedWriter returns the FeedWriter used to render share link feeds.
func NewFeedWriter() service.FeedWriter {
	return &feedWriter{}
}

// Render wraps the stored VEVENT payloads of a calendar in a VCALENDAR
// envelope. Event payloads are stored as complete components and are
// emitted verbatim, only line endings are normalized to CRLF as required
// by RFC 5545.
func (w *feedWriter) Render(calendar *entity.Calendar, events []*entity.Event) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	if calendar.Name != "" {
		writeLine(&b, "X-WR-CALNAME:"+escapeText(calendar.Name))
	}
	if calendar.Timezone != "" {
		writeLine(&b, "X-WR-TIMEZONE:"+escapeText(calendar.Timezone))
	}

	for _, event := range events {
		writeComponent(&b, event.RawICal)
	}

	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// writeComponent emits a stored component with CRLF endings, skipping
// blank lines so sloppy payloads cannot inject gaps into the document.
func writeComponent(b *strings.Builder, payload string) {
	payload = strings.ReplaceAll(payload, "\r\n", "\n")
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		writeLine(b, line)
	}
}

// escapeText escapes a value per RFC 5545 section 3.3.11.
func escapeText(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)

	return replacer.Replace(s)
}
