package postgres

import (
	"context"
	"database/sql"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns categories by ascending order.
func (repo *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []*model.CategoryModel
	if err := query.Order("sort_order ASC").Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategoryDomain(row))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var row model.CategoryModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&row), nil
}

// Create inserts a category. A duplicate slug yields repository.ErrCategorySlugTaken.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	row := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategorySlugTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = row.CreatedAt
	category.UpdatedAt = row.UpdatedAt

	return nil
}

// Update overwrites the mutable columns of a category. The slug is never rewritten.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	row := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).Model(row).Select("*").Omit("id", "slug", "created_at").Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// MaxOrder returns the highest order over all categories.
func (repo *categoryRepository) MaxOrder(ctx context.Context) (int, bool, error) {
	var maxOrder sql.NullInt64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("MAX(sort_order)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, false, domainerrors.NewDatabaseExecuteError(err, "failed to read highest category order")
	}

	return int(maxOrder.Int64), maxOrder.Valid, nil
}

func (repo *categoryRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("is_active = ?", true).
		Count(&total).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count active categories")
	}

	return total, nil
}
