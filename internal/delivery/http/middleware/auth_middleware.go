package middleware

import (
	"strings"

	"calshare/internal/delivery/http/response"
	"calshare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key under which Authenticate stores the
// authenticated account's ID.
const KeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication on the management API.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the account
// ID on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyUserID, userID)

		return next(c)
	}
}

// UserID reads the authenticated account ID that Authenticate stored on
// the context. The second return is false on routes that skipped the
// middleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(KeyUserID).(uuid.UUID)

	return userID, ok
}
