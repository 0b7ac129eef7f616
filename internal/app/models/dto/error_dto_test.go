package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError_FieldErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(LoginRequest{Email: "not-an-email"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	fields, ok := detail.Details.([]ErrorDetail)
	require.True(t, ok)
	assert.Len(t, fields, 2)
	assert.Equal(t, "Email", fields[0].Field)
	assert.Equal(t, "Email must be a valid email address", fields[0].Message)
	assert.Equal(t, "Password is required", fields[1].Message)
}

func TestHandleValidationError_SyntaxError(t *testing.T) {
	var req LoginRequest
	err := json.Unmarshal([]byte(`{"email":`), &req)
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, MalformedBodyDetail, detail.Details)
}

func TestHandleValidationError_TypeErrorHidesGoTypes(t *testing.T) {
	var req LoginRequest
	err := json.Unmarshal([]byte(`{"email":42}`), &req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "LoginRequest")

	detail := HandleValidationError(err)
	assert.Equal(t, MalformedBodyDetail, detail.Details)
}
