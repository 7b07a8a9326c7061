package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups menu items. Slug is the human-chosen identifier stored on
// MenuItem.Category and never changes after creation.
type Category struct {
	ID          uuid.UUID `json:"_id"`
	Slug        string    `json:"id"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NormalizeSlug upper-cases and trims a category slug.
func NormalizeSlug(slug string) string {
	return strings.ToUpper(strings.TrimSpace(slug))
}

// CategoryCount is the number of menu items referencing one category slug.
type CategoryCount struct {
	Category string
	Count    int64
}
