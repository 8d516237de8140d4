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
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	mockUsecase "calshare/internal/mocks/usecase"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUsecase := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(userUsecase, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	group := e.Group("/auth")
	group.POST("/register", handler.Register)
	group.POST("/login", handler.Login)
	group.POST("/refresh", handler.Refresh)
	group.POST("/logout", handler.Logout)

	return e, userUsecase
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e, userUsecase := newUserTestServer(t)

	userID := uuid.New()
	userUsecase.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "alice@example.com", input.Email)
			return &usecase.RegisterOutput{
				User: &entity.User{ID: userID, Name: input.Name, Email: input.Email},
			}, nil
		})

	rec := postJSON(e, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"longenough"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	// The password never echoes back.
	assert.NotContains(t, rec.Body.String(), "longenough")
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	e, _ := newUserTestServer(t)

	rec := postJSON(e, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e, userUsecase := newUserTestServer(t)

	userUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Refresh_Success(t *testing.T) {
	e, userUsecase := newUserTestServer(t)

	userUsecase.EXPECT().
		Refresh(mock.Anything, mock.AnythingOfType("*usecase.RefreshInput")).
		Return(&usecase.RefreshOutput{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	rec := postJSON(e, "/auth/refresh", `{"refreshToken":"old-refresh"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
	assert.Contains(t, rec.Body.String(), "new-refresh")
}

func TestUserHandler_Logout_Success(t *testing.T) {
	e, userUsecase := newUserTestServer(t)

	userUsecase.EXPECT().
		Logout(mock.Anything, mock.AnythingOfType("*usecase.LogoutInput")).
		Return(nil)

	rec := postJSON(e, "/auth/logout", `{"refreshToken":"the-refresh"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
