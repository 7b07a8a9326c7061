package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"menudash/config"
	"menudash/internal/delivery/http/middleware"
	"menudash/internal/delivery/http/router"
	"menudash/internal/delivery/http/router/handler"
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

type testApp struct {
	echo     *echo.Echo
	sessions *mockUsecase.MockSessionUsecase
	menu     *mockUsecase.MockMenuUsecase
	users    *mockUsecase.MockUserUsecase
}

func newTestApp(t *testing.T, webRoot string) *testApp {
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "sid"}}
	cfg.Web.Root = webRoot
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &testApp{
		sessions: mockUsecase.NewMockSessionUsecase(t),
		menu:     mockUsecase.NewMockMenuUsecase(t),
		users:    mockUsecase.NewMockUserUsecase(t),
	}

	params := router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: app.sessions, Config: cfg, Logger: logger}),
		MenuHandler:       handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: app.menu, Logger: logger}),
		CategoryHandler:   handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t)}),
		SettingsHandler:   handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: mockUsecase.NewMockSettingsUsecase(t)}),
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: app.users, Logger: logger}),
		AnalyticsHandler:  handler.NewAnalyticsHandler(handler.AnalyticsHandlerParams{AnalyticsUC: mockUsecase.NewMockAnalyticsUsecase(t)}),
		QRCodeHandler:     handler.NewQRCodeHandler(handler.QRCodeHandlerParams{QRCodeUC: mockUsecase.NewMockQRCodeUsecase(t)}),
		PublicMenuHandler: handler.NewPublicMenuHandler(handler.PublicMenuHandlerParams{PublicMenuUC: mockUsecase.NewMockPublicMenuUsecase(t)}),
		PageHandler:       handler.NewPageHandler(handler.PageHandlerParams{Config: cfg}),
		AuthMiddleware:    middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Sessions: app.sessions, Config: cfg}),
	}
	app.echo = NewEcho(cfg, logger, params)

	return app
}

func (a *testApp) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: token})
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_PublicMenuReadNeedsNoSession(t *testing.T) {
	app := newTestApp(t, "")

	app.menu.EXPECT().ListItems(mock.Anything, mock.Anything).Return(&usecase.ListMenuItemsOutput{
		Items:      []*entity.MenuItem{},
		Pagination: entity.NewPagination(1, 20, 0),
	}, nil).Once()

	rec := app.do(http.MethodGet, "/api/menu", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_WritesRequireSession(t *testing.T) {
	app := newTestApp(t, "")

	app.sessions.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized).Once()

	rec := app.do(http.MethodPost, "/api/menu", `{"name":"Soup","price":1,"category":"SOUPS"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNAUTHORIZED"`)
}

func TestServer_UserListRequiresAdmin(t *testing.T) {
	app := newTestApp(t, "")
	staff := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
	admin := &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin}

	app.sessions.EXPECT().Authenticate(mock.Anything, "staff-token").Return(staff, nil).Once()
	app.sessions.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Once()
	app.users.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil).Once()

	rec := app.do(http.MethodGet, "/api/users", "", "staff-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/api/users", "", "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.do(http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestServer_Pages(t *testing.T) {
	root := t.TempDir()
	for _, page := range []string{"login", "dashboard", "menu"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, page), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, page, "index.html"), []byte("<h1>"+page+"</h1>"), 0o600))
	}
	app := newTestApp(t, root)

	t.Run("dashboard redirects to login", func(t *testing.T) {
		app.sessions.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized).Once()

		rec := app.do(http.MethodGet, "/dashboard/menu", "", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, middleware.LoginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("signed in dashboard", func(t *testing.T) {
		app.sessions.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Session{UserID: uuid.New()}, nil).Once()

		rec := app.do(http.MethodGet, "/dashboard", "", "good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>dashboard</h1>")
	})

	t.Run("public menu page", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/menu/view", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>menu</h1>")
	})
}
