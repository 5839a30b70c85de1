package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// String length limits
const (
	MaxIDLength          = 128
	MaxNameLength        = 256
	MaxDescriptionLength = 2048
	MaxProblemLength     = 4096
	MaxTemplateLength    = 1024
	MaxTopicLength       = 128
)

// Regular expressions for validation
var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores and dots
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

var strict = bluemonday.StrictPolicy()

// SanitizeText strips markup from labels such as formula names and topics
// and trims them. Entities escaped by the policy are decoded again. Math
// input is never passed through it: "3<x and x>1" reads as a tag.
func SanitizeText(value string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(value)))
}

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.IndexFunc(value, isDisallowedControl) >= 0 {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// isDisallowedControl rejects control characters other than tab and line
// breaks
func isDisallowedControl(r rune) bool {
	return unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r'
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateToolID validates a tool ID field (allows dots for service.tool format)
func ValidateToolID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateName validates a name field
func ValidateName(name, fieldName string) error {
	return ValidateString(name, fieldName, 1, MaxNameLength, true)
}

// ValidateDescription validates a description field
func ValidateDescription(description, fieldName string, required bool) error {
	return ValidateString(description, fieldName, 0, MaxDescriptionLength, required)
}

// ValidateProblem validates free-text problem input. The text is kept as
// typed, so only length and control characters are checked.
func ValidateProblem(problem string) error {
	return ValidateString(problem, "problem", 1, MaxProblemLength, true)
}

// ValidateTemplate validates a formula template
func ValidateTemplate(template string) error {
	return ValidateString(template, "template", 1, MaxTemplateLength, true)
}

// ValidateExpression validates a calculator expression
func ValidateExpression(expression string) error {
	return ValidateString(expression, "expression", 1, MaxTemplateLength, true)
}

// ValidateTopic validates a recent topic label
func ValidateTopic(topic string) error {
	return ValidateString(topic, "topic", 1, MaxTopicLength, true)
}
