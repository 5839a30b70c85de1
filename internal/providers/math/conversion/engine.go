package conversion

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidTable    = errors.New("invalid unit table")
)

// DisplayPrecision is the number of decimals used when rendering results
const DisplayPrecision = 6

// Unit is one measurable unit. Factor is relative to the category base
// unit; affine categories leave it zero.
type Unit struct {
	Key    string  `json:"key" yaml:"key" toml:"key"`
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Symbol string  `json:"symbol" yaml:"symbol" toml:"symbol"`
	Factor float64 `json:"factor,omitempty" yaml:"factor" toml:"factor"`
}

// Category is a physical dimension and its units
type Category struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Base   string `json:"base"`
	Affine bool   `json:"affine"`
	Units  []Unit `json:"units"`

	index map[string]Unit
}

// Unit looks up a unit by key
func (c Category) Unit(key string) (Unit, bool) {
	u, ok := c.index[key]
	return u, ok
}

// Engine converts quantities between units of one category
type Engine struct {
	order      []string
	categories map[string]Category
}

// NewEngine builds an engine over the given tables, or the default tables
// when none are passed.
func NewEngine(tables ...Category) (*Engine, error) {
	if len(tables) == 0 {
		tables = DefaultCategories()
	}

	e := &Engine{categories: make(map[string]Category, len(tables))}
	for _, c := range tables {
		if err := validate(c); err != nil {
			return nil, err
		}
		if _, dup := e.categories[c.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidTable, c.Key)
		}
		c.index = make(map[string]Unit, len(c.Units))
		for _, u := range c.Units {
			c.index[u.Key] = u
		}
		e.order = append(e.order, c.Key)
		e.categories[c.Key] = c
	}
	return e, nil
}

// MustNewEngine is NewEngine for tables known to be valid
func MustNewEngine(tables ...Category) *Engine {
	e, err := NewEngine(tables...)
	if err != nil {
		panic(err)
	}
	return e
}

func validate(c Category) error {
	if c.Key == "" || len(c.Units) == 0 {
		return fmt.Errorf("%w: category %q has no units", ErrInvalidTable, c.Key)
	}

	seen := make(map[string]struct{}, len(c.Units))
	hasBase := false
	for _, u := range c.Units {
		if _, dup := seen[u.Key]; dup {
			return fmt.Errorf("%w: duplicate unit %q in %q", ErrInvalidTable, u.Key, c.Key)
		}
		seen[u.Key] = struct{}{}

		if u.Key == c.Base {
			hasBase = true
		}
		if c.Affine {
			continue
		}
		if u.Factor <= 0 || gomath.IsInf(u.Factor, 0) || gomath.IsNaN(u.Factor) {
			return fmt.Errorf("%w: unit %q in %q needs a positive factor", ErrInvalidTable, u.Key, c.Key)
		}
		if u.Key == c.Base && !scalar.EqualWithinAbsOrRel(u.Factor, 1, 1e-12, 1e-12) {
			return fmt.Errorf("%w: base unit %q in %q must have factor 1", ErrInvalidTable, u.Key, c.Key)
		}
	}
	if !hasBase {
		return fmt.Errorf("%w: base unit %q missing from %q", ErrInvalidTable, c.Base, c.Key)
	}
	return nil
}

// Categories returns the categories in table order
func (e *Engine) Categories() []Category {
	out := make([]Category, 0, len(e.order))
	for _, key := range e.order {
		out = append(out, e.categories[key])
	}
	return out
}

// Category looks up a category by key
func (e *Engine) Category(key string) (Category, bool) {
	c, ok := e.categories[key]
	return c, ok
}

// Convert converts value from one unit to another within category. Equal
// units return value unchanged. The result is not rounded.
func (e *Engine) Convert(category string, value float64, from, to string) (float64, error) {
	c, ok := e.categories[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	if gomath.IsNaN(value) || gomath.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}

	fromUnit, ok := c.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s in %s", ErrUnknownUnit, from, category)
	}
	toUnit, ok := c.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s in %s", ErrUnknownUnit, to, category)
	}

	if from == to {
		return value, nil
	}
	if c.Affine {
		return ConvertTemperature(value, from, to), nil
	}
	return value * fromUnit.Factor / toUnit.Factor, nil
}

// ConvertString parses raw and converts it
func (e *Engine) ConvertString(category, raw, from, to string) (float64, error) {
	value, err := ParseValue(raw)
	if err != nil {
		return 0, err
	}
	return e.Convert(category, value, from, to)
}

// ParseValue parses user input as a finite float
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidValue)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return v, nil
}

// Format renders a converted value with DisplayPrecision decimals
func Format(value float64) string {
	return strconv.FormatFloat(scalar.Round(value, DisplayPrecision), 'f', DisplayPrecision, 64)
}
