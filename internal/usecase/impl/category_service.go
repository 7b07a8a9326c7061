package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService creates the category usecase.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, ref string) (*entity.Category, error) {
	return findCategory(ctx, s.categoryRepo, ref)
}

// CreateCategory stores a category after the last one in global order.
func (s *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Slug:        entity.NormalizeSlug(input.Slug),
		Label:       strings.TrimSpace(input.Label),
		Icon:        input.Icon,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if category.Slug == "" || category.Label == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("id and label are required")
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.CategoryRepo()

		maxOrder, found, err := repo.MaxOrder(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to read highest category order")
		}
		category.Order = entity.NextOrder(maxOrder, found)

		return repo.Create(ctx, category)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCategorySlugTaken) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Category created",
		slog.String("category", category.Slug),
		slog.Int("order", category.Order),
	)

	return category, nil
}

// UpdateCategory changes the mutable fields. The slug is kept.
func (s *categoryService) UpdateCategory(ctx context.Context, ref string, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := findCategory(ctx, s.categoryRepo, ref)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		category.Label = strings.TrimSpace(*input.Label)
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Order != nil {
		category.Order = *input.Order
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if category.Label == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("label is required")
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category no menu item references.
func (s *categoryService) DeleteCategory(ctx context.Context, ref string) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		categoryRepo := txRepoFactory.CategoryRepo()

		category, err := findCategory(ctx, categoryRepo, ref)
		if err != nil {
			return err
		}

		count, err := txRepoFactory.MenuItemRepo().CountByCategory(ctx, category.Slug)
		if err != nil {
			return errors.Wrap(err, "failed to count category items")
		}
		if count > 0 {
			return domainerrors.NewCategoryInUseError(count)
		}

		if err := categoryRepo.Delete(ctx, category.ID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
}

// findCategory resolves a reference that is either the storage id or the slug.
func findCategory(ctx context.Context, repo repository.CategoryRepository, ref string) (*entity.Category, error) {
	ref = strings.TrimSpace(ref)

	var (
		category *entity.Category
		err      error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		category, err = repo.FindByID(ctx, id)
	} else {
		category, err = repo.FindBySlug(ctx, entity.NormalizeSlug(ref))
	}
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}
