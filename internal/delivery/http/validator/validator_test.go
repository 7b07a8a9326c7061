package validator

import (
	"testing"

	domainerrors "menudash/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"min=0"`
	Role  string  `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&sample{Name: "Egusi", Price: 10}))

	err := cv.Validate(&sample{Price: -1, Role: "owner"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "price must be at least 0")
	assert.Contains(t, appErr.Details(), "role must be one of [admin user]")
}
