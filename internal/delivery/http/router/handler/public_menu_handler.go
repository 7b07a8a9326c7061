package handler

import (
	"net/http"

	"menudash/internal/delivery/http/response"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicMenuHandlerParams holds dependencies for PublicMenuHandler, injected by Fx.
type PublicMenuHandlerParams struct {
	fx.In

	PublicMenuUC usecase.PublicMenuUsecase
}

// PublicMenuHandler serves the customer-facing menu.
type PublicMenuHandler struct {
	publicMenuUC usecase.PublicMenuUsecase
}

// NewPublicMenuHandler is the constructor for PublicMenuHandler.
func NewPublicMenuHandler(params PublicMenuHandlerParams) *PublicMenuHandler {
	return &PublicMenuHandler{publicMenuUC: params.PublicMenuUC}
}

// GetPublicMenu handles GET /public/menu.
func (h *PublicMenuHandler) GetPublicMenu(c echo.Context) error {
	menu, err := h.publicMenuUC.GetPublicMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}
