package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityModel mirrors the append-only 'activities' table.
type ActivityModel struct {
	ID        string            `gorm:"type:varchar(36);primaryKey"`
	Type      string            `gorm:"type:varchar(16);not null"`
	Item      string            `gorm:"type:varchar(200);not null"`
	Category  string            `gorm:"type:varchar(64)"`
	User      string            `gorm:"column:actor;type:varchar(255);not null"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	Timestamp time.Time         `gorm:"column:occurred_at;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
