// Package context carries the request id and the request-scoped logger
// from the HTTP layer down to the usecases, so feed and share-management
// log lines can be correlated with one inbound request.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header the request id travels in.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID reads the request id stored on the echo context, minting a
// fresh one when the middleware has not run (direct handler tests).
func GetRequestID(c echo.Context) string {
	val := c.Get(string(keyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or the fallback
// for work that runs outside a request (startup, detached goroutines).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
