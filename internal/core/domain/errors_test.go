package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrMissingConfig", ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestErrNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("speaker %q: %w", "jane-doe", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"email": "This field is required"}}

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid input: required fields missing", err.Error())

	var vErr *ValidationError
	assert.True(t, errors.As(fmt.Errorf("submit: %w", err), &vErr))
	assert.Contains(t, vErr.Fields, "email")
}
