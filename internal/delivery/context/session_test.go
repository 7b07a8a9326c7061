package context

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"menudash/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSession_RoundTrip(t *testing.T) {
	session := &entity.Session{UserID: uuid.New(), Name: "Ada", Role: entity.RoleAdmin}

	ctx := WithSession(context.Background(), session)

	assert.Same(t, session, GetSession(ctx))
	assert.Nil(t, GetSession(context.Background()))
}

func TestSetSession_StoresOnEchoAndRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	session := &entity.Session{UserID: uuid.New(), Email: "ada@example.com"}

	SetSession(c, session)

	assert.Same(t, session, GetSessionFromEcho(c))
	assert.Same(t, session, GetSession(c.Request().Context()))
}

func TestActorName(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		want    string
	}{
		{name: "no session", session: nil, want: entity.DefaultActivityUser},
		{name: "name preferred", session: &entity.Session{Name: "Ada", Email: "ada@example.com"}, want: "Ada"},
		{name: "email fallback", session: &entity.Session{Email: "ada@example.com"}, want: "ada@example.com"},
		{name: "empty session", session: &entity.Session{}, want: entity.DefaultActivityUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.session != nil {
				ctx = WithSession(ctx, tt.session)
			}

			assert.Equal(t, tt.want, ActorName(ctx))
		})
	}
}

func TestBindRequest_TagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	BindRequest(c, "req-1", base)

	ctx := c.Request().Context()
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "req-1", RequestIDFromEcho(c))

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestGetLoggerOrDefault_Fallbacks(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), GetLoggerOrDefault(context.Background(), nil))
	assert.Empty(t, RequestID(context.Background()))
}
