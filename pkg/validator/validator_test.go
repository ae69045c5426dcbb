package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Region   string   `validate:"required"`
	Index    *int     `validate:"required,gte=0"`
	Currency string   `validate:"len=3"`
	WhatsApp string   `validate:"omitempty,url"`
	Services []string `validate:"min=1"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	index := 2

	err := v.Validate(&sample{
		Region:   "chile",
		Index:    &index,
		Currency: "CLP",
		Services: []string{"Ortodoncia"},
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	index := -1

	err := v.Validate(&sample{
		Index:    &index,
		Currency: "CL",
		WhatsApp: "not a link",
	})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"Region":   "Region is required",
		"Index":    "Index must be greater than or equal to 0",
		"Currency": "Currency must be exactly 3 characters",
		"WhatsApp": "WhatsApp must be a valid URL",
		"Services": "Services must have at least 1 entries",
	}, v.FormatValidationErrors(err))
}

func TestFormatValidationErrors_NotValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}
