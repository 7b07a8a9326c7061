package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Slug is the value menu items reference.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Label       string    `gorm:"type:varchar(100);not null"`
	Icon        string    `gorm:"type:varchar(32);not null"`
	Description string    `gorm:"type:text"`
	Order       int       `gorm:"column:sort_order;not null;default:0;index"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
