package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "2 + 3 * 4", "2 + 3 * 4"},
		{"trimmed", "  solve x = 2  ", "solve x = 2"},
		{"markup stripped", "<b>area</b> of a <script>alert(1)</script>circle", "area of a circle"},
		{"comparison kept", "x < 5", "x < 5"},
		{"ampersand kept", "a & b", "a & b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, ValidateString("", "field", 1, 10, false))
	assert.EqualError(t, ValidateString("", "field", 1, 10, true), "field is required")
	assert.EqualError(t, ValidateString("abcdefghijk", "field", 1, 10, true), "field must not exceed 10 characters")
	assert.EqualError(t, ValidateString("a\x00b", "field", 1, 10, true), "field contains invalid characters")
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("sol_01ARZ3NDEKTSV4RRFFQ69G5FAV", "id", true))
	assert.NoError(t, ValidateID("geometry.pythagorean.pythagorean_theorem", "id", true))
	assert.Error(t, ValidateID("../etc/passwd", "id", true))
	assert.Error(t, ValidateID("", "id", true))
}

func TestValidateProblem(t *testing.T) {
	assert.NoError(t, ValidateProblem("2 + 2"))
	assert.NoError(t, ValidateProblem("solve 3<x and x>1"))
	assert.NoError(t, ValidateProblem("line one\nline two\t(tabbed)"))
	assert.EqualError(t, ValidateProblem("2 + 2\x07"), "problem contains invalid characters")
	assert.Error(t, ValidateProblem(""))
	assert.Error(t, ValidateProblem(strings.Repeat("1", MaxProblemLength+1)))
}
