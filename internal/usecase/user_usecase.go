package usecase

import (
	"context"

	"menudash/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase manages dashboard accounts.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// UpdateUser applies input on behalf of actor. Only the user themself or an
	// admin may update; role changes by non-admins are dropped.
	UpdateUser(ctx context.Context, actor *entity.Session, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Phone    string
	Image    string
}

// UpdateUserInput carries the user fields present in an update request.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
	Phone    *string
	Image    *string
}
