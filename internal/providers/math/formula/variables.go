package formula

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Bindings maps a variable name to the raw string a user typed for it.
// A missing or blank value leaves the variable unresolved.
type Bindings map[string]string

// identifier matches variable-shaped tokens on word boundaries
var identifier = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*\b`)

// reserved holds constants and function names that are never variables
var reserved = map[string]struct{}{
	"pi": {}, "e": {},
	"sin": {}, "cos": {}, "tan": {}, "asin": {}, "acos": {}, "atan": {},
	"log": {}, "ln": {}, "sqrt": {}, "abs": {},
	"floor": {}, "ceil": {}, "round": {}, "exp": {}, "mod": {},
	"factorial": {},
}

// IsReserved reports whether name is a constant or function name
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// ReservedWords returns the reserved vocabulary in sorted order
func ReservedWords() []string {
	words := make([]string, 0, len(reserved))
	for w := range reserved {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ExtractVariables returns the free variables of template in order of first
// appearance, without duplicates.
func ExtractVariables(template string) []string {
	seen := make(map[string]struct{})
	vars := []string{}
	for _, tok := range identifier.FindAllString(template, -1) {
		if IsReserved(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		vars = append(vars, tok)
	}
	return vars
}

// Substitute replaces every whole-token occurrence of each bound variable
// with its value. Signed values are parenthesized so "-b" with b=-5 reads
// "-(-5)". Values are inserted in a single pass and never rescanned.
func Substitute(template string, bindings Bindings) string {
	return identifier.ReplaceAllStringFunc(template, func(tok string) string {
		value, ok := bound(bindings, tok)
		if !ok {
			return tok
		}
		if strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
			return "(" + value + ")"
		}
		return value
	})
}

// Unresolved returns the variables still free in a substituted expression
func Unresolved(expression string) []string {
	return ExtractVariables(expression)
}

func bound(bindings Bindings, name string) (string, bool) {
	raw, ok := bindings[name]
	if !ok {
		return "", false
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	return value, true
}

// ValidateBindings checks that every variable of template is bound and that
// each bound value is a number. It runs before substitution on every
// evaluation path.
func ValidateBindings(template string, bindings Bindings) error {
	required := ExtractVariables(template)

	var missing []string
	for _, name := range required {
		if _, ok := bound(bindings, name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingVariablesError{Names: missing}
	}

	for _, name := range required {
		value, _ := bound(bindings, name)
		if !IsNumeric(value) {
			return &InvalidValueError{Name: name, Value: value}
		}
	}
	return nil
}

// IsNumeric reports whether value parses as a finite number. NaN, Inf and
// Infinity are rejected.
func IsNumeric(value string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseExample parses "a=1, b=-5, c=6" into bindings. Malformed pairs are
// skipped.
func ParseExample(example string) Bindings {
	out := Bindings{}
	for _, pair := range strings.Split(example, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// FormatBindings renders bindings as "a=1, b=-5" in template variable order
func FormatBindings(template string, bindings Bindings) string {
	parts := []string{}
	for _, name := range ExtractVariables(template) {
		if value, ok := bound(bindings, name); ok {
			parts = append(parts, fmt.Sprintf("%s=%s", name, value))
		}
	}
	return strings.Join(parts, ", ")
}
