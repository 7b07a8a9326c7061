// Package service declares the stateless capabilities the usecases depend on:
// credential hashing, session tokens and QR rendering.
package service

import (
	"time"

	"menudash/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed tokens stored in the session cookie.
type TokenService interface {
	// IssueSessionToken signs a token for the session and reports when it expires.
	IssueSessionToken(session *entity.Session) (token string, expiresAt time.Time, err error)

	// ParseSessionToken validates a token and returns the session it carries.
	ParseSessionToken(token string) (*entity.Session, error)

	// SessionTTL returns how long issued tokens stay valid.
	SessionTTL() time.Duration
}

// PasswordHasher hashes staff passwords and verifies login attempts against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
