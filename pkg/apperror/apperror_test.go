package apperror

import (
	"errors"
	"fmt"
	"testing"

	"clinic-records-api/pkg/messages"

	"github.com/stretchr/testify/assert"
)

func TestError_String(t *testing.T) {
	err := New(Conflict, messages.UserAlreadyExists)
	assert.Equal(t, "conflict: users.alreadyExists", err.Error())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestError_AsThroughWrapping(t *testing.T) {
	sentinel := New(NotFound, messages.UserNotFound)
	wrapped := fmt.Errorf("replace user: %w", sentinel)

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, NotFound, appErr.Kind)
	assert.ErrorIs(t, wrapped, sentinel)
}
