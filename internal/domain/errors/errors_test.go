package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewCategoryInUseError(t *testing.T) {
	err := NewCategoryInUseError(3)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "CATEGORY_IN_USE", err.ErrorCode())
	assert.Contains(t, err.Message(), "3")
	assert.Equal(t, "3", err.Details())
	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrUserAlreadyExists.WrapMessage("email already exists")

	var appErr AppError
	assert.True(t, pkgerrors.As(wrapped, &appErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
	assert.ErrorIs(t, wrapped, ErrUserAlreadyExists)
}

func TestBaseError_IsComparesCode(t *testing.T) {
	assert.ErrorIs(t, ErrMenuItemNotFound.WithDetails("x"), ErrMenuItemNotFound)
	assert.NotErrorIs(t, ErrMenuItemNotFound, ErrCategoryNotFound)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := pkgerrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create item")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create item", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}
