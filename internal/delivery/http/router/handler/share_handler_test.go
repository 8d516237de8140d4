package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calshare/internal/delivery/http/middleware"
	"calshare/internal/delivery/http/validator"
	domainerrors "calshare/internal/domain/errors"
	mockUsecase "calshare/internal/mocks/usecase"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newShareTestServer registers the share routes behind a stub auth
// middleware that injects a fixed account ID.
func newShareTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockShareUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	shareUsecase := mockUsecase.NewMockShareUsecase(t)
	handler := NewShareHandler(shareUsecase, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	authenticated := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.KeyUserID, userID)
			return next(c)
		}
	}

	group := e.Group("/shares")
	group.Use(authenticated)
	group.POST("", handler.CreateShareLink)
	group.GET("", handler.ListShareLinks)
	group.DELETE("/:shareID", handler.DeleteShareLink)
	group.GET("/:shareID/qrcode", handler.ShareLinkQRCode)

	return e, shareUsecase
}

func TestShareHandler_CreateShareLink_Success(t *testing.T) {
	userID := uuid.New()
	e, shareUsecase := newShareTestServer(t, userID)

	calendarID := uuid.New()
	shareUsecase.EXPECT().
		CreateShareLink(mock.Anything, mock.AnythingOfType("*usecase.CreateShareLinkInput")).
		RunAndReturn(func(_ context.Context, input *usecase.CreateShareLinkInput) (*usecase.CreateShareLinkOutput, error) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, calendarID, input.CalendarID)
			return &usecase.CreateShareLinkOutput{
				ShareID: "share-id",
				Token:   "the-token",
				URL:     "https://cal.example.com/share/the-token",
			}, nil
		})

	body := `{"calendarId":"` + calendarID.String() + `","description":"team"}`
	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "the-token")
	assert.Contains(t, rec.Body.String(), "share-id")
}

func TestShareHandler_CreateShareLink_MissingCalendarID(t *testing.T) {
	e, _ := newShareTestServer(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(`{"description":"team"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestShareHandler_CreateShareLink_Conflict(t *testing.T) {
	e, shareUsecase := newShareTestServer(t, uuid.New())

	calendarID := uuid.New()
	shareUsecase.EXPECT().
		CreateShareLink(mock.Anything, mock.AnythingOfType("*usecase.CreateShareLinkInput")).
		Return(nil, domainerrors.ErrShareConflict)

	body := `{"calendarId":"` + calendarID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHARE_CONFLICT")
}

func TestShareHandler_DeleteShareLink_NotFound(t *testing.T) {
	userID := uuid.New()
	e, shareUsecase := newShareTestServer(t, userID)

	shareUsecase.EXPECT().
		DeleteShareLink(mock.Anything, userID, "missing").
		Return(domainerrors.ErrShareNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/shares/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHARE_NOT_FOUND")
}

func TestShareHandler_ShareLinkQRCode_Success(t *testing.T) {
	userID := uuid.New()
	e, shareUsecase := newShareTestServer(t, userID)

	png := []byte{0x89, 'P', 'N', 'G'}
	shareUsecase.EXPECT().
		ShareLinkQRCode(mock.Anything, userID, "share-id", "the-token").
		Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/shares/share-id/qrcode?token=the-token", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShareHandler_ShareLinkQRCode_MissingToken(t *testing.T) {
	e, _ := newShareTestServer(t, uuid.New())

	// Without the plaintext token the server cannot rebuild the feed URL.
	req := httptest.NewRequest(http.MethodGet, "/shares/share-id/qrcode", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
