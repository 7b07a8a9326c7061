package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsModel mirrors the single-row 'settings' table.
type SettingsModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(200);not null"`
	Phone          string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Instagram      string    `gorm:"type:varchar(100)"`
	Address        string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	Logo           string    `gorm:"type:text"`
	PrimaryColor   string    `gorm:"type:varchar(16)"`
	SecondaryColor string    `gorm:"type:varchar(16)"`
	AccentColor    string    `gorm:"type:varchar(16)"`
	Currency       string    `gorm:"type:varchar(8)"`
	CurrencySymbol string    `gorm:"type:varchar(8)"`
	Timezone       string    `gorm:"type:varchar(64)"`
	Language       string    `gorm:"type:varchar(16)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}
