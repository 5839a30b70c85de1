package solver

import "strings"

// Category tags a problem by the kind of reasoning it needs
type Category string

const (
	QuadraticEquation Category = "quadratic_equation"
	LinearEquation    Category = "linear_equation"
	Arithmetic        Category = "arithmetic"
	Geometry          Category = "geometry"
	Trigonometry      Category = "trigonometry"
	Calculus          Category = "calculus"
	General           Category = "general"
)

// Categories lists every tag Classify can return
func Categories() []Category {
	return []Category{
		QuadraticEquation, LinearEquation, Arithmetic,
		Geometry, Trigonometry, Calculus, General,
	}
}

// Valid reports whether c is a known tag
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Rule maps a problem to a category when Match holds. Match receives the
// lowercased text and the raw text.
type Rule struct {
	Category Category
	Match    func(lower, raw string) bool
}

var rules = []Rule{
	{QuadraticEquation, func(lower, _ string) bool {
		return containsAny(lower, "x²", "x^2", "quadratic")
	}},
	{LinearEquation, func(lower, _ string) bool {
		return strings.Contains(lower, "x") && containsAny(lower, "=", "solve")
	}},
	{Arithmetic, func(_, raw string) bool {
		return strings.ContainsAny(raw, "+-*/^√")
	}},
	{Geometry, func(lower, _ string) bool {
		return containsAny(lower, "area", "perimeter")
	}},
	{Trigonometry, func(lower, _ string) bool {
		return containsAny(lower, "sin", "cos", "tan")
	}},
	{Calculus, func(lower, _ string) bool {
		return containsAny(lower, "derivative", "integral")
	}},
}

// Rules returns the classification rules in priority order. The first
// matching rule wins; no match means General.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify tags text with the first matching rule
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.Match(lower, text) {
			return r.Category
		}
	}
	return General
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
