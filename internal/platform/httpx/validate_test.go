package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilog/agrilog/internal/shared"
)

type sampleInput struct {
	Name    string   `json:"name" validate:"required"`
	Grade   string   `json:"grade" validate:"omitempty,oneof=I II III"`
	Count   int      `json:"count" validate:"gt=0"`
	Percent *float64 `json:"percent" validate:"omitempty,gte=0,lte=100"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	over := 120.0
	err := Validate(sampleInput{Grade: "IV", Count: 0, Percent: &over})
	require.ErrorIs(t, err, shared.ErrValidation)

	fields := map[string]string{}
	for _, f := range shared.FieldsOf(err) {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be one of I II III", fields["grade"])
	assert.Equal(t, "must be greater than 0", fields["count"])
	assert.Equal(t, "must be at most 100", fields["percent"])
}

func TestValidateAcceptsValidInput(t *testing.T) {
	require.NoError(t, Validate(sampleInput{Name: "x", Count: 1}))
}
