package entity

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the singleton holding restaurant identity, theming and locale.
type Settings struct {
	ID             uuid.UUID `json:"_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Instagram      string    `json:"instagram,omitempty"`
	Address        string    `json:"address,omitempty"`
	Description    string    `json:"description,omitempty"`
	Logo           string    `json:"logo,omitempty"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AccentColor    string    `json:"accentColor"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currencySymbol"`
	Timezone       string    `json:"timezone"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Default theming and locale values applied when the settings document is first created.
const (
	DefaultPrimaryColor   = "#1a1a1a"
	DefaultSecondaryColor = "#ea580c"
	DefaultAccentColor    = "#f97316"
	DefaultCurrency       = "NGN"
	DefaultCurrencySymbol = "₦"
	DefaultTimezone       = "Africa/Lagos"
	DefaultLanguage       = "en"
)

// NewDefaultSettings builds a settings document with default theming and locale
// around the given restaurant identity.
func NewDefaultSettings(name, phone, email, instagram string) *Settings {
	return &Settings{
		Name:           name,
		Phone:          phone,
		Email:          email,
		Instagram:      instagram,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
		Currency:       DefaultCurrency,
		CurrencySymbol: DefaultCurrencySymbol,
		Timezone:       DefaultTimezone,
		Language:       DefaultLanguage,
	}
}
