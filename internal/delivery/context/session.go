package context

import (
	"context"

	"menudash/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// WithSession returns a new context carrying the authenticated session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession extracts the authenticated session from context.Context.
// If not found, returns nil.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(sessionKey).(*entity.Session); ok {
		return session
	}

	return nil
}

// SetSession stores the session on both the echo.Context and its request context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(echoSessionKey, session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSessionFromEcho extracts the session from echo.Context.
func GetSessionFromEcho(c echo.Context) *entity.Session {
	if session, ok := c.Get(echoSessionKey).(*entity.Session); ok {
		return session
	}

	return nil
}

// ActorName returns the display name recorded for mutations made in ctx.
func ActorName(ctx context.Context) string {
	session := GetSession(ctx)
	if session == nil {
		return entity.DefaultActivityUser
	}
	if session.Name != "" {
		return session.Name
	}
	if session.Email != "" {
		return session.Email
	}

	return entity.DefaultActivityUser
}
