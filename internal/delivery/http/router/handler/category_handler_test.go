package handler

import (
	"net/http"
	"testing"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	mockUsecase "menudash/internal/mocks/usecase"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCategoryTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC})

	e := newTestEcho()
	e.GET("/categories", h.ListCategories)
	e.POST("/categories", h.CreateCategory)
	e.GET("/categories/:id", h.GetCategory)
	e.PUT("/categories/:id", h.UpdateCategory)
	e.DELETE("/categories/:id", h.DeleteCategory)

	return e, categoryUC
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		activeOnly bool
	}{
		{name: "all", target: "/categories", activeOnly: false},
		{name: "active only", target: "/categories?active=true", activeOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, categoryUC := newCategoryTestEcho(t)

			categoryUC.EXPECT().
				ListCategories(mock.Anything, tt.activeOnly).
				Return([]*entity.Category{{Slug: "SOUPS", Label: "Soups"}}, nil).
				Once()

			rec := doRequest(e, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"id":"SOUPS"`)
		})
	}
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	e, categoryUC := newCategoryTestEcho(t)

	categoryUC.EXPECT().
		CreateCategory(mock.Anything, mock.MatchedBy(func(in *usecase.CreateCategoryInput) bool {
			return in.Slug == "soups" && in.Label == "Soups" && in.Icon == "🍲"
		})).
		Return(&entity.Category{Slug: "SOUPS", Label: "Soups", Icon: "🍲", Order: 3, IsActive: true}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/categories", `{"id":"soups","label":"Soups","icon":"🍲"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCategoryHandler_CreateCategory_RequiresLabel(t *testing.T) {
	e, _ := newCategoryTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/categories", `{"id":"SOUPS"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestCategoryHandler_UpdateCategory_BySlug(t *testing.T) {
	e, categoryUC := newCategoryTestEcho(t)

	categoryUC.EXPECT().
		UpdateCategory(mock.Anything, "SOUPS", mock.MatchedBy(func(in *usecase.UpdateCategoryInput) bool {
			return in.IsActive != nil && !*in.IsActive && in.Label == nil
		})).
		Return(&entity.Category{Slug: "SOUPS"}, nil).
		Once()

	rec := doRequest(e, http.MethodPut, "/categories/SOUPS", `{"isActive":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		e, categoryUC := newCategoryTestEcho(t)

		categoryUC.EXPECT().DeleteCategory(mock.Anything, "SOUPS").Return(domainerrors.NewCategoryInUseError(3)).Once()

		rec := doRequest(e, http.MethodDelete, "/categories/SOUPS", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "CATEGORY_IN_USE", env.Error.Code)
		assert.Contains(t, env.Message, "3")
	})

	t.Run("not found", func(t *testing.T) {
		e, categoryUC := newCategoryTestEcho(t)

		categoryUC.EXPECT().DeleteCategory(mock.Anything, "NOPE").Return(domainerrors.ErrCategoryNotFound).Once()

		rec := doRequest(e, http.MethodDelete, "/categories/NOPE", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		e, categoryUC := newCategoryTestEcho(t)

		categoryUC.EXPECT().DeleteCategory(mock.Anything, "SOUPS").Return(nil).Once()

		rec := doRequest(e, http.MethodDelete, "/categories/SOUPS", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
