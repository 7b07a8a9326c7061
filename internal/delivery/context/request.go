// Package context carries request-scoped values (request id, logger, session)
// between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	sessionKey
)

// echo.Context stores values by string.
const (
	echoRequestIDKey = "menudash.request_id"
	echoSessionKey   = "menudash.session"
)

// BindRequest attaches the request id and a logger tagged with it to both the
// echo.Context and the request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) *slog.Logger {
	reqLogger := logger.With(slog.String("request_id", requestID))

	c.Set(echoRequestIDKey, requestID)
	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, reqLogger)
	c.SetRequest(c.Request().WithContext(ctx))

	return reqLogger
}

// RequestIDFromEcho returns the request id stored by BindRequest, or "".
func RequestIDFromEcho(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id carried by ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger, then fallback, then slog.Default.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}
	if fallback != nil {
		return fallback
	}

	return slog.Default()
}
