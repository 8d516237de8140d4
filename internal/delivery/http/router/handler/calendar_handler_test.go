package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calshare/internal/delivery/http/middleware"
	"calshare/internal/delivery/http/validator"
	"calshare/internal/domain/entity"
	mockUsecase "calshare/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCalendarTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockCalendarUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calendarUsecase := mockUsecase.NewMockCalendarUsecase(t)
	handler := NewCalendarHandler(calendarUsecase, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	authenticated := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.KeyUserID, userID)
			return next(c)
		}
	}

	group := e.Group("/calendars")
	group.Use(authenticated)
	group.POST("", handler.CreateCalendar)
	group.GET("", handler.ListCalendars)
	group.POST("/:calendarID/events", handler.CreateEvent)
	group.GET("/:calendarID/events", handler.ListEvents)

	return e, calendarUsecase
}

func TestCalendarHandler_CreateCalendar_Success(t *testing.T) {
	userID := uuid.New()
	e, calendarUsecase := newCalendarTestServer(t, userID)

	calendarUsecase.EXPECT().
		CreateCalendar(mock.Anything, mock.AnythingOfType("*usecase.CreateCalendarInput")).
		Return(&entity.Calendar{ID: uuid.New(), UserID: userID, Name: "work"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/calendars", strings.NewReader(`{"name":"work"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "work")
}

func TestCalendarHandler_CreateCalendar_MissingName(t *testing.T) {
	e, _ := newCalendarTestServer(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/calendars", strings.NewReader(`{"color":"#fff"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler_CreateEvent_InvalidCalendarID(t *testing.T) {
	e, _ := newCalendarTestServer(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/calendars/not-a-uuid/events", strings.NewReader(`{"ical":"BEGIN:VEVENT\nUID:x\nEND:VEVENT"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler_ListEvents_Success(t *testing.T) {
	userID := uuid.New()
	e, calendarUsecase := newCalendarTestServer(t, userID)

	calendarID := uuid.New()
	events := []*entity.Event{{ID: uuid.New(), CalendarID: calendarID, UID: "u1", Summary: "Standup"}}
	calendarUsecase.EXPECT().ListEvents(mock.Anything, userID, calendarID).Return(events, nil)

	req := httptest.NewRequest(http.MethodGet, "/calendars/"+calendarID.String()+"/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Standup")
}
