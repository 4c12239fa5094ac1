package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalid_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("apply quantity change: %w", Invalid("quantity", "no puede ser negativa"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "quantity no puede ser negativa")

	var ie *InvalidInputError
	assert.True(t, errors.As(err, &ie))
	assert.Equal(t, "quantity", ie.Field)
}
