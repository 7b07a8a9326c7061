// Package entity contains the core business objects of the menu dashboard,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a single dish or drink offered by the restaurant.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"` // Category slug, matched by value rather than a foreign key.
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Available   bool      `json:"available"`
	Order       int       `json:"order"` // Display position inside the category.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MenuItemFilter narrows a menu item listing.
type MenuItemFilter struct {
	Category  string
	Available *bool
	Search    string // Case-insensitive substring matched against name or description.
}

// OrderAssignment moves one menu item to a new display position.
type OrderAssignment struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

// NextOrder returns the order a new entry receives when appended after the
// highest existing order. An empty group starts at zero.
func NextOrder(maxOrder int, found bool) int {
	if !found {
		return 0
	}

	return maxOrder + 1
}
