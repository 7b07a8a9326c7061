package handler

import (
	"log/slog"
	"net/http"
	"time"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/delivery/http/response"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler signs users in and out of the dashboard.
type AuthHandler struct {
	sessionUC    usecase.SessionUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		sessionUC:  params.SessionUC,
		cookieName: "menudash_session",
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.CookieName != "" {
			h.cookieName = params.Config.Auth.CookieName
		}
		h.cookieSecure = params.Config.Auth.CookieSecure
	}

	return h
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setSessionCookie(c, "", time.Unix(0, 0))

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Session returns the user behind the current session.
func (h *AuthHandler) Session(c echo.Context) error {
	session := deliverycontext.GetSessionFromEcho(c)
	if session == nil {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	user, err := h.sessionUC.CurrentUser(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}

	c.SetCookie(cookie)
}
