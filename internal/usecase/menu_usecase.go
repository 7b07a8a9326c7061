// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"menudash/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuUsecase manages menu items, their display order and the activity they generate.
type MenuUsecase interface {
	ListItems(ctx context.Context, input *ListMenuItemsInput) (*ListMenuItemsOutput, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	CreateItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ReorderItems(ctx context.Context, assignments []entity.OrderAssignment) error
}

// --- Input DTOs ---

// ListMenuItemsInput holds the listing filters and page request.
type ListMenuItemsInput struct {
	Category  string
	Available *bool
	Search    string
	Page      int
	Limit     int
}

// ListMenuItemsOutput is one page of menu items.
type ListMenuItemsOutput struct {
	Items      []*entity.MenuItem
	Pagination entity.Pagination
}

// CreateMenuItemInput defines the data required to create a menu item.
type CreateMenuItemInput struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Image       string
	Available   *bool
}

// UpdateMenuItemInput carries the fields present in an update request. Nil fields are left untouched.
type UpdateMenuItemInput struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Image       *string
	Available   *bool
	Order       *int
}

// ChangedFields lists the JSON names of the fields the update sets.
func (in *UpdateMenuItemInput) ChangedFields() []string {
	if in == nil {
		return []string{}
	}

	changes := make([]string, 0, 7)
	if in.Name != nil {
		changes = append(changes, "name")
	}
	if in.Price != nil {
		changes = append(changes, "price")
	}
	if in.Category != nil {
		changes = append(changes, "category")
	}
	if in.Description != nil {
		changes = append(changes, "description")
	}
	if in.Image != nil {
		changes = append(changes, "image")
	}
	if in.Available != nil {
		changes = append(changes, "available")
	}
	if in.Order != nil {
		changes = append(changes, "order")
	}

	return changes
}
