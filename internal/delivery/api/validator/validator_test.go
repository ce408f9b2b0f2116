package validator

import (
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Username string `validate:"required,notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&registerRequest{Username: "a", Email: "a@x.io", Password: "p"}))

	err := v.Validate(&registerRequest{Username: "  ", Email: "nope"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Username failed notblank")
	assert.Contains(t, appErr.Details(), "Email failed email")
	assert.Contains(t, appErr.Details(), "Password failed required")
}
