package auth

import (
	"time"

	"menudash/config"
	"menudash/internal/domain/entity"
	"menudash/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionIssuer = "menudash"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
		now:        time.Now,
	}, nil
}

// IssueSessionToken signs an HS256 token carrying the session identity.
func (s *jwtService) IssueSessionToken(session *entity.Session) (string, time.Time, error) {
	if session == nil || session.UserID == uuid.Nil {
		return "", time.Time{}, errors.New("session must identify a user")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.sessionTTL)

	claims := service.SessionClaims{
		Name:  session.Name,
		Email: session.Email,
		Role:  session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID.String(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return signed, expiresAt, nil
}

// ParseSessionToken validates the signature, issuer and expiry of a token.
func (s *jwtService) ParseSessionToken(tokenString string) (*entity.Session, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session subject")
	}

	return &entity.Session{
		UserID: userID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// SessionTTL returns the configured lifetime of session tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}
