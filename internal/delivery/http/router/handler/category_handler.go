package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"menudash/internal/delivery/http/response"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Label       string `json:"label" validate:"required,max=100"`
	Icon        string `json:"icon" validate:"max=32"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Label       *string `json:"label" validate:"omitempty,min=1,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=32"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// ListCategories handles GET /categories; ?active=true hides inactive ones.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	activeOnly := false
	if raw := c.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "active must be true or false")
		}
		activeOnly = parsed
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetCategory handles GET /categories/:id where id is a storage id or slug.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// CreateCategory handles POST /categories.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Slug:        req.ID,
		Label:       req.Label,
		Icon:        req.Icon,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles PUT /categories/:id.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), c.Param("id"), &usecase.UpdateCategoryInput{
		Label:       req.Label,
		Icon:        req.Icon,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles DELETE /categories/:id.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryUC.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
