package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	mockUsecase "menudash/internal/mocks/usecase"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "sid", CookieSecure: true}}
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Config: cfg})

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/session", h.Session)

	return e, sessionUC
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets session cookie", func(t *testing.T) {
		e, sessionUC := newAuthTestEcho(t)
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

		sessionUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
			Return(&usecase.LoginOutput{
				User:      &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin},
				Token:     "signed-token",
				ExpiresAt: expiresAt,
			}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, "sid")
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/", cookie.Path)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		e, sessionUC := newAuthTestEcho(t)

		sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, findCookie(rec, "sid"))
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed email", func(t *testing.T) {
		e, _ := newAuthTestEcho(t)

		rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"admin","password":"secret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e, _ := newAuthTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, "sid")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		e, _ := newAuthTestEcho(t)

		rec := doRequest(e, http.MethodGet, "/auth/session", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns current user", func(t *testing.T) {
		sessionUC := mockUsecase.NewMockSessionUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC})
		session := &entity.Session{UserID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}

		e := newTestEcho()
		e.GET("/auth/session", h.Session, func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetSession(c, session)
				return next(c)
			}
		})

		sessionUC.EXPECT().
			CurrentUser(mock.Anything, session).
			Return(&entity.User{ID: session.UserID, Name: "Ada", Email: session.Email, Role: entity.RoleUser}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/auth/session", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"name":"Ada"`)
	})
}
