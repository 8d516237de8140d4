package handler

import (
	"log/slog"
	"net/http"

	"calshare/internal/delivery/http/middleware"
	"calshare/internal/delivery/http/response"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalendarHandler holds dependencies for calendar and event handlers.
type CalendarHandler struct {
	uc     usecase.CalendarUsecase
	logger *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler, injected by Fx.
func NewCalendarHandler(uc usecase.CalendarUsecase, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCalendarRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Color    string `json:"color" validate:"max=32"`
	Timezone string `json:"timezone" validate:"max=64"`
}

type createEventRequest struct {
	ICal string `json:"ical" validate:"required"`
}

// CreateCalendar handles the calendar creation request.
func (h *CalendarHandler) CreateCalendar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	var req createCalendarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calendar input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	calendar, err := h.uc.CreateCalendar(c.Request().Context(), &usecase.CreateCalendarInput{
		UserID:   userID,
		Name:     req.Name,
		Color:    req.Color,
		Timezone: req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, calendar, "Calendar created successfully")
}

// ListCalendars returns the account's calendars.
func (h *CalendarHandler) ListCalendars(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	calendars, err := h.uc.ListCalendars(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, calendars, "")
}

// CreateEvent stores one iCalendar component in an owned calendar.
func (h *CalendarHandler) CreateEvent(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	calendarID, err := uuid.Parse(c.Param("calendarID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid calendar ID")
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		UserID:     userID,
		CalendarID: calendarID,
		RawICal:    req.ICal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// ListEvents returns the events of one owned calendar.
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	calendarID, err := uuid.Parse(c.Param("calendarID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid calendar ID")
	}

	events, err := h.uc.ListEvents(c.Request().Context(), userID, calendarID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
