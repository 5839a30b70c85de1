package formula

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEvaluation marks a failure reported by the expression evaluator
var ErrEvaluation = errors.New("evaluation failed")

// MissingVariablesError reports variables that are still unbound
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	label := "variable"
	if len(e.Names) > 1 {
		label = "variables"
	}
	return fmt.Sprintf("missing %s: %s", label, strings.Join(e.Names, ", "))
}

// InvalidValueError reports a binding that is not a number
type InvalidValueError struct {
	Name  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Name, e.Value)
}

// IsMissingVariables reports whether err carries unresolved variables
func IsMissingVariables(err error) bool {
	var target *MissingVariablesError
	return errors.As(err, &target)
}

// IsInvalidValue reports whether err carries a non-numeric binding
func IsInvalidValue(err error) bool {
	var target *InvalidValueError
	return errors.As(err, &target)
}
