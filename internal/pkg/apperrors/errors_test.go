package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("username cannot be blank")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "username cannot be blank", err.Error())
}

func TestCustomErrorWithoutMessageUsesSentinel(t *testing.T) {
	err := New(ErrNotFound, "")
	assert.Equal(t, ErrNotFound.Error(), err.Error())
}

func TestWithDetails(t *testing.T) {
	err := New(ErrPermissionDenied, "no access").
		WithDetails(map[string]interface{}{"resource": "post"})

	var custom *CustomError
	assert.True(t, errors.As(error(err), &custom))
	assert.Equal(t, "post", custom.Details["resource"])
}
