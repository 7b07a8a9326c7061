package middleware

import (
	"net/http"
	"strings"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Page paths guarded by PageGuard.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Config   *config.Config
}

// AuthMiddleware resolves the session cookie (or a Bearer token) into a session.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := "menudash_session"
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.CookieName != "" {
		cookieName = params.Config.Auth.CookieName
	}

	return &AuthMiddleware{
		sessions:   params.Sessions,
		cookieName: cookieName,
	}
}

// CookieName returns the name of the session cookie.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// Authenticate rejects requests without a valid session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessions.Authenticate(c.Request().Context(), m.token(c))
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := deliverycontext.GetSessionFromEcho(c)
			if session == nil || session.Role != requiredRole {
				return domainerrors.ErrUnauthorized
			}

			return next(c)
		}
	}
}

// PageGuard sends visitors without a session from the dashboard to the login
// page, and signed-in users from the login page to the dashboard.
func (m *AuthMiddleware) PageGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		isDashboard := path == DashboardPath || strings.HasPrefix(path, DashboardPath+"/")
		isLogin := path == LoginPath

		if !isDashboard && !isLogin {
			return next(c)
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), m.token(c))
		signedIn := err == nil && session != nil

		switch {
		case isDashboard && !signedIn:
			return c.Redirect(http.StatusFound, LoginPath)
		case isLogin && signedIn:
			return c.Redirect(http.StatusFound, DashboardPath)
		}

		if signedIn {
			deliverycontext.SetSession(c, session)
		}

		return next(c)
	}
}

// token returns the session cookie value, falling back to a Bearer token.
func (m *AuthMiddleware) token(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
