// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Price       float64   `gorm:"type:double precision;not null;check:chk_menu_items_price,price >= 0"`
	Category    string    `gorm:"type:varchar(64);not null;index:idx_menu_items_category_order,priority:1"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Available   bool      `gorm:"not null;index"`
	Order       int       `gorm:"column:sort_order;not null;default:0;index:idx_menu_items_category_order,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
