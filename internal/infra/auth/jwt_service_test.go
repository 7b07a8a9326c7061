package auth

import (
	"testing"
	"time"

	"menudash/config"
	"menudash/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))

	assert.Error(t, err)
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	session := &entity.Session{
		UserID: uuid.New(),
		Name:   "Ada",
		Email:  "ada@example.com",
		Role:   entity.RoleAdmin,
	}

	token, expiresAt, err := svc.IssueSessionToken(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, session, parsed)
}

func TestJWTService_IssueRejectsEmptySession(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	_, _, err = svc.IssueSessionToken(&entity.Session{})

	assert.Error(t, err)
}

func TestJWTService_ParseRejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-b"))
	require.NoError(t, err)

	token, _, err := issuer.IssueSessionToken(&entity.Session{UserID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseRejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := impl.IssueSessionToken(&entity.Session{UserID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ParseSessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ParseRejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	claims := jwt.MapClaims{"sub": uuid.NewString(), "iss": sessionIssuer, "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseSessionToken(unsigned)
	assert.Error(t, err)
}

func TestJWTService_SessionTTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, svc.SessionTTL())
}
