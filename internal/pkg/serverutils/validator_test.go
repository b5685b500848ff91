package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
}

func TestValidateRequestOK(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Username: "stella", Email: "stella@example.com"})
	assert.NoError(t, err)
}

func TestValidateRequestFirstFailureWins(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Username: "ab", Email: "bad"})
	require.Error(t, err)

	var ferr *fiber.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, fiber.StatusBadRequest, ferr.Code)
	assert.Equal(t, "field username failed on min", ferr.Message)
}
