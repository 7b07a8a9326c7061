package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/domain/service"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser hashes the password and stores a new account.
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	user := &entity.User{
		Name:  strings.TrimSpace(input.Name),
		Email: entity.NormalizeEmail(input.Email),
		Role:  input.Role,
		Phone: input.Phone,
		Image: input.Image,
	}
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	switch {
	case user.Name == "" || user.Email == "" || input.Password == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	case !user.Role.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	logger.Info("User created", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))

	return user, nil
}

// UpdateUser applies input when actor is the user or an admin. A role in the
// input is only honoured for admins.
func (s *userService) UpdateUser(ctx context.Context, actor *entity.Session, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if actor == nil || (actor.UserID != id && !actor.IsAdmin()) {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = entity.NormalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.Role != nil && actor.IsAdmin() {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role")
		}
		user.Role = *input.Role
	}
	if user.Name == "" || user.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserEmailTaken):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
