package ical

import (
	"strings"
	"testing"

	"calshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedWriter_Render(t *testing.T) {
	writer := NewFeedWriter()

	calendar := &entity.Calendar{Name: "Team", Timezone: "Europe/Berlin"}
	events := []*entity.Event{
		{UID: "a", RawICal: "BEGIN:VEVENT\nUID:a\nSUMMARY:Standup\nEND:VEVENT"},
		{UID: "b", RawICal: "BEGIN:VEVENT\r\nUID:b\r\nSUMMARY:Review\r\nEND:VEVENT\r\n"},
	}

	feed := writer.Render(calendar, events)
	lines := strings.Split(feed, "\r\n")

	require.True(t, strings.HasSuffix(feed, "\r\n"))
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-2])
	assert.Contains(t, lines, "VERSION:2.0")
	assert.Contains(t, lines, "X-WR-CALNAME:Team")
	assert.Contains(t, lines, "X-WR-TIMEZONE:Europe/Berlin")
	assert.Contains(t, lines, "UID:a")
	assert.Contains(t, lines, "UID:b")

	// Every line ends with CRLF regardless of how the payload was stored.
	assert.NotContains(t, feed, "\n\n")
	for _, line := range lines[:len(lines)-1] {
		assert.NotEmpty(t, line)
	}
}

func TestFeedWriter_Render_EmptyCalendar(t *testing.T) {
	writer := NewFeedWriter()

	feed := writer.Render(&entity.Calendar{}, nil)

	assert.Equal(t,
		"BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:"+prodID+"\r\nCALSCALE:GREGORIAN\r\nEND:VCALENDAR\r\n",
		feed)
}

func TestFeedWriter_Render_EscapesCalendarName(t *testing.T) {
	writer := NewFeedWriter()

	feed := writer.Render(&entity.Calendar{Name: "on-call; rota, west"}, nil)

	assert.Contains(t, feed, `X-WR-CALNAME:on-call\; rota\, west`)
}
