package usecase

import (
	"context"

	"menudash/internal/domain/entity"
)

// CategoryUsecase manages categories. A category reference is either its
// storage id or its slug.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	GetCategory(ctx context.Context, ref string) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, ref string, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, ref string) error
}

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Slug        string
	Label       string
	Icon        string
	Description string
	IsActive    *bool
}

// UpdateCategoryInput carries the mutable category fields. The slug cannot change.
type UpdateCategoryInput struct {
	Label       *string
	Icon        *string
	Description *string
	Order       *int
	IsActive    *bool
}
