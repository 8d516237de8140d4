package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"calshare/config"
	"calshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultFeedCacheMaxAge = 5 * time.Minute

// FeedHandler serves the anonymous calendar feed endpoint.
type FeedHandler struct {
	uc          usecase.FeedUsecase
	cacheMaxAge time.Duration
	logger      *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, cfg *config.Config, logger *slog.Logger) *FeedHandler {
	cacheMaxAge := defaultFeedCacheMaxAge
	if cfg != nil && cfg.ShareLinks != nil && cfg.ShareLinks.FeedCacheMaxAge > 0 {
		cacheMaxAge = cfg.ShareLinks.FeedCacheMaxAge
	}

	return &FeedHandler{
		uc:          uc,
		cacheMaxAge: cacheMaxAge,
		logger:      logger,
	}
}

// Feed resolves the share token in the path and serves the iCalendar
// document. Authorization failures surface through the error handler as
// the single opaque 401.
func (h *FeedHandler) Feed(c echo.Context) error {
	output, err := h.uc.ResolveFeed(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	header := c.Response().Header()
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", feedFilename(output.CalendarName)))
	header.Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(h.cacheMaxAge.Seconds())))

	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.Body))
}

// feedFilename derives a safe .ics download name from the calendar name.
func feedFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == ' ':
			return '-'
		default:
			return -1
		}
	}, name)

	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "calendar"
	}

	return cleaned + ".ics"
}
