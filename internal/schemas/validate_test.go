package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["tone", "confidence"],
	"properties": {
		"tone": {"type": "string", "enum": ["Formal", "Informal"]},
		"confidence": {"type": "string"},
		"scores": {"type": "array", "items": {"type": "number"}}
	}
}`

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "broken", loadErr.Name)
	assert.Contains(t, err.Error(), "failed to load schema broken")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCompile_NotJSON(t *testing.T) {
	_, err := Compile("garbage", `not json`)
	assert.Error(t, err)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile("garbage", `{`)
	})
	assert.NotPanics(t, func() {
		s := MustCompile("tone", testSchema)
		assert.Equal(t, "tone", s.Name())
	})
}

func TestSchema_Validate(t *testing.T) {
	s := MustCompile("tone", testSchema)

	tests := []struct {
		name      string
		document  any
		wantErr   bool
		wantField string
	}{
		{
			name:     "valid",
			document: map[string]any{"tone": "Formal", "confidence": "High"},
		},
		{
			name:     "valid with numbers decoded as float64",
			document: map[string]any{"tone": "Informal", "confidence": "Low", "scores": []any{0.5, 1.0}},
		},
		{
			name:      "missing field",
			document:  map[string]any{"tone": "Formal"},
			wantErr:   true,
			wantField: "(root)",
		},
		{
			name:      "enum mismatch",
			document:  map[string]any{"tone": "Angry", "confidence": "High"},
			wantErr:   true,
			wantField: "tone",
		},
		{
			name:      "nested array item type",
			document:  map[string]any{"tone": "Formal", "confidence": "High", "scores": []any{"high"}},
			wantErr:   true,
			wantField: "scores.0",
		},
		{
			name:      "not an object",
			document:  []any{"Formal"},
			wantErr:   true,
			wantField: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.document)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "tone", vErr.Schema)
			require.NotEmpty(t, vErr.Errors)
			assert.Equal(t, tt.wantField, vErr.Errors[0].Field)
		})
	}
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"tone": "Formal", "confidence": "High"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"tone": "Formal"}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Errors, 1)
	assert.Contains(t, vErr.Errors[0].Message, "confidence")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"tone": `)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "tone", Message: "is required"},
			{Field: "confidence", Message: "Invalid type"},
		},
	}
	assert.Equal(t, "validation failed: tone: is required; confidence: Invalid type", err.Error())

	err.Schema = "tone_detect"
	assert.Equal(t, "reply does not match tone_detect: tone: is required; confidence: Invalid type", err.Error())
}
