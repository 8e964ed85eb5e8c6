package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email" validate:"required,email"`
	Roles  []string `json:"roles" validate:"required,min=1,dive,required"`
	Active *bool    `json:"active" validate:"required"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator("en")
	active := true

	err := v.Validate(&sampleRequest{Email: "not-an-email", Roles: []string{""}, Active: &active})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "roles[0]")
	assert.NotContains(t, errs, "active")
	assert.Contains(t, errs["name"], "name")
}

func TestValidate_MissingPointerBool(t *testing.T) {
	v := NewValidator("es")

	err := v.Validate(&sampleRequest{Name: "a", Email: "a@x.com", Roles: []string{"Patient"}})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "active")
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator("es")
	active := false

	assert.NoError(t, v.Validate(&sampleRequest{Name: "a", Email: "a@x.com", Roles: []string{"Patient"}, Active: &active}))
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator("es")

	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
