// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"menudash/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when no menu item matches the given id.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the persistence operations for menu items.
type MenuItemRepository interface {
	// List returns items matching filter ordered by category, order and insertion time.
	// A limit of zero returns every matching row.
	List(ctx context.Context, filter entity.MenuItemFilter, offset, limit int) ([]*entity.MenuItem, error)

	// Count returns how many items match filter.
	Count(ctx context.Context, filter entity.MenuItemFilter) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxOrder returns the highest order among items of category.
	// found is false when the category holds no items.
	MaxOrder(ctx context.Context, category string) (maxOrder int, found bool, err error)

	// UpdateOrder sets the order of a single item.
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error

	// CountByCategory returns how many items reference the category slug.
	CountByCategory(ctx context.Context, category string) (int64, error)

	// CountGroupedByCategory returns the item count of every referenced category slug.
	CountGroupedByCategory(ctx context.Context) ([]entity.CategoryCount, error)

	// PriceStats returns average, minimum and maximum price over every item.
	PriceStats(ctx context.Context) (entity.PriceStats, error)
}
