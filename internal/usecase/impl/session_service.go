package impl

import (
	"context"
	"log/slog"

	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/domain/service"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService creates the session usecase.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Login checks the credentials and issues a session token.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	user, err := s.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		logger.Warn("Login rejected", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.IssueSessionToken(&entity.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	logger.Info("User logged in", slog.String("user_id", user.ID.String()))

	return &usecase.LoginOutput{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate resolves a session token.
func (s *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := s.tokenService.ParseSessionToken(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Session token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}

// CurrentUser loads the account behind a session.
func (s *sessionService) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
