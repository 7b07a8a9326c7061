package handler

import (
	"net/http"

	"menudash/internal/delivery/http/response"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the restaurant settings endpoints.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// UpdateSettingsRequest represents the request body for updating settings.
// Absent fields keep their stored value.
type UpdateSettingsRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone          *string `json:"phone" validate:"omitempty,max=50"`
	Email          *string `json:"email" validate:"omitempty,max=200"`
	Instagram      *string `json:"instagram" validate:"omitempty,max=100"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	Description    *string `json:"description" validate:"omitempty,max=2000"`
	Logo           *string `json:"logo" validate:"omitempty,max=2048"`
	PrimaryColor   *string `json:"primaryColor" validate:"omitempty,max=32"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,max=32"`
	AccentColor    *string `json:"accentColor" validate:"omitempty,max=32"`
	Currency       *string `json:"currency" validate:"omitempty,max=8"`
	CurrencySymbol *string `json:"currencySymbol" validate:"omitempty,max=8"`
	Timezone       *string `json:"timezone" validate:"omitempty,max=64"`
	Language       *string `json:"language" validate:"omitempty,max=16"`
}

// GetSettings handles GET /settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateSettings handles PUT /settings.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), &usecase.UpdateSettingsInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Instagram:      req.Instagram,
		Address:        req.Address,
		Description:    req.Description,
		Logo:           req.Logo,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		AccentColor:    req.AccentColor,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
		Timezone:       req.Timezone,
		Language:       req.Language,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated successfully")
}
