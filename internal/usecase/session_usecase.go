package usecase

import (
	"context"
	"time"

	"menudash/internal/domain/entity"
)

// SessionUsecase signs users in and resolves session tokens.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)
}

// LoginInput holds the submitted credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the signed-in user with a fresh session token.
type LoginOutput struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
