package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("get: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.Invalid("quantity", "no puede ser negativa"), fiber.StatusBadRequest, "VALIDATION"},
		{fmt.Errorf("insert part history: %w: dup", domain.ErrDuplicate), fiber.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("ping: %w", domain.ErrStorageUnavailable), fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{errors.New("otro"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := statusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}
