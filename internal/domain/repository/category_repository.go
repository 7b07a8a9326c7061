package repository

import (
	"context"
	"errors"

	"menudash/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when no category matches the given id or slug.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategorySlugTaken is returned when a category slug is already in use.
	ErrCategorySlugTaken = errors.New("category slug already exists")
)

// CategoryRepository defines the persistence operations for categories.
type CategoryRepository interface {
	// List returns categories sorted by order, restricted to active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxOrder returns the highest order over all categories.
	MaxOrder(ctx context.Context) (maxOrder int, found bool, err error)

	// CountActive returns how many categories are active.
	CountActive(ctx context.Context) (int64, error)
}
