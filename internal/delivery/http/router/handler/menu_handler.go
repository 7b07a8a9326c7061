package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"menudash/internal/delivery/http/response"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the menu item endpoints.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// CreateMenuItemRequest represents the request body for creating a menu item
type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"max=2000"`
	Image       string   `json:"image" validate:"omitempty,max=2048"`
	Available   *bool    `json:"available"`
}

// UpdateMenuItemRequest represents the request body for updating a menu item.
// Absent fields are left untouched.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Image       *string  `json:"image" validate:"omitempty,max=2048"`
	Available   *bool    `json:"available"`
	Order       *int     `json:"order"`
}

// ReorderItem is one (id, order) pair of a reorder request
type ReorderItem struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order int       `json:"order"`
}

// ReorderRequest represents the request body for reordering menu items
type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

// ListItems handles GET /menu with category, available, search, page and limit filters.
func (h *MenuHandler) ListItems(c echo.Context) error {
	input := &usecase.ListMenuItemsInput{}
	err := echo.QueryParamsBinder(c).
		String("category", &input.Category).
		String("search", &input.Search).
		Int("page", &input.Page).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "available must be true or false")
		}
		input.Available = &available
	}

	output, err := h.menuUC.ListItems(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, output.Items, output.Pagination)
}

// GetItem handles GET /menu/:id.
func (h *MenuHandler) GetItem(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	item, err := h.menuUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// CreateItem handles POST /menu.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.CreateItem(c.Request().Context(), &usecase.CreateMenuItemInput{
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Available:   req.Available,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateItem handles PUT /menu/:id.
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	var req UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.UpdateItem(c.Request().Context(), id, &usecase.UpdateMenuItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Available:   req.Available,
		Order:       req.Order,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteItem handles DELETE /menu/:id.
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.menuUC.DeleteItem(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}

// ReorderItems handles POST /menu/reorder.
func (h *MenuHandler) ReorderItems(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidReorder)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidReorder)
	}

	assignments := make([]entity.OrderAssignment, 0, len(req.Items))
	for _, item := range req.Items {
		assignments = append(assignments, entity.OrderAssignment{ID: item.ID, Order: item.Order})
	}

	if err := h.menuUC.ReorderItems(c.Request().Context(), assignments); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Items reordered successfully")
}
