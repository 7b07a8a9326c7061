package postgres

import (
	"context"
	"database/sql"
	"strings"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuItemRepository implements repository.MenuItemRepository using GORM.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// likeEscaper escapes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (repo *menuItemRepository) filtered(ctx context.Context, filter entity.MenuItemFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.MenuItemModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	return query
}

// List returns matching items sorted by category, order and creation time.
func (repo *menuItemRepository) List(ctx context.Context, filter entity.MenuItemFilter, offset, limit int) ([]*entity.MenuItem, error) {
	query := repo.filtered(ctx, filter).
		Order("category ASC").
		Order("sort_order ASC").
		Order("created_at ASC")

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.MenuItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toMenuItemDomain(row))
	}

	return items, nil
}

// Count returns how many items match the filter.
func (repo *menuItemRepository) Count(ctx context.Context, filter entity.MenuItemFilter) (int64, error) {
	var total int64
	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count menu items")
	}

	return total, nil
}

// FindByID retrieves a single menu item.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var row model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&row), nil
}

// Create inserts a new item and fills its generated fields.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	row := fromMenuItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid menu item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt

	return nil
}

// Update overwrites every mutable column of an existing item.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	row := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).Model(row).Select("*").Omit("id", "created_at").Updates(row)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid menu item")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	item.UpdatedAt = row.UpdatedAt

	return nil
}

// Delete removes an item.
func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// MaxOrder returns the highest order inside a category.
func (repo *menuItemRepository) MaxOrder(ctx context.Context, category string) (int, bool, error) {
	var maxOrder sql.NullInt64
	err := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("category = ?", category).
		Select("MAX(sort_order)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, false, domainerrors.NewDatabaseExecuteError(err, "failed to read highest menu item order")
	}

	return int(maxOrder.Int64), maxOrder.Valid, nil
}

// UpdateOrder moves a single item to a new position.
func (repo *menuItemRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Update("sort_order", order)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// CountByCategory returns how many items reference the category slug.
func (repo *menuItemRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	return repo.Count(ctx, entity.MenuItemFilter{Category: category})
}

// CountGroupedByCategory returns per-slug item counts.
func (repo *menuItemRepository) CountGroupedByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to group menu items by category")
	}

	counts := make([]entity.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.CategoryCount{Category: row.Category, Count: row.Count})
	}

	return counts, nil
}

// PriceStats aggregates prices over every item; empty tables yield zeros.
func (repo *menuItemRepository) PriceStats(ctx context.Context) (entity.PriceStats, error) {
	var row struct {
		AvgPrice float64
		MinPrice float64
		MaxPrice float64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Select("COALESCE(AVG(price), 0) AS avg_price, COALESCE(MIN(price), 0) AS min_price, COALESCE(MAX(price), 0) AS max_price").
		Scan(&row).Error
	if err != nil {
		return entity.PriceStats{}, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate menu item prices")
	}

	return entity.PriceStats{
		AvgPrice: row.AvgPrice,
		MinPrice: row.MinPrice,
		MaxPrice: row.MaxPrice,
	}, nil
}
