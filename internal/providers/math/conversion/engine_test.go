package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	require.NoError(t, err)
	return e
}

func TestConvertLinear(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name     string
		category string
		value    float64
		from, to string
		expected float64
	}{
		{"mile to kilometer", Length, 1, "mile", "kilometer", 1.609344},
		{"kilometer to meter", Length, 2.5, "kilometer", "meter", 2500},
		{"foot to inch", Length, 1, "foot", "inch", 12},
		{"kilogram to gram", Weight, 3, "kilogram", "gram", 3000},
		{"hour to minute", Time, 2, "hour", "minute", 120},
		{"hectare to square meter", Area, 1, "hectare", "square_meter", 10000},
		{"cubic meter to liter", Volume, 1, "cubic_meter", "liter", 1000},
		{"zero", Length, 0, "mile", "meter", 0},
		{"negative", Length, -1, "kilometer", "meter", -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Convert(tt.category, tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestConvertTemperature(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name     string
		value    float64
		from, to string
		expected float64
	}{
		{"boiling C to F", 100, Celsius, Fahrenheit, 212},
		{"freezing F to C", 32, Fahrenheit, Celsius, 0},
		{"C to K", 0, Celsius, Kelvin, 273.15},
		{"K to F", 0, Kelvin, Fahrenheit, -459.67},
		{"F to R", 32, Fahrenheit, Rankine, 491.67},
		{"R to K", 491.67, Rankine, Kelvin, 273.15},
		{"crossover", -40, Celsius, Fahrenheit, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Convert(Temperature, tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	e := newEngine(t)

	for _, c := range e.Categories() {
		for _, u := range c.Units {
			got, err := e.Convert(c.Key, 123.456, u.Key, u.Key)
			require.NoError(t, err)
			assert.Equal(t, 123.456, got, "%s/%s", c.Key, u.Key)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	e := newEngine(t)

	for _, c := range e.Categories() {
		for _, from := range c.Units {
			for _, to := range c.Units {
				there, err := e.Convert(c.Key, 42.5, from.Key, to.Key)
				require.NoError(t, err)
				back, err := e.Convert(c.Key, there, to.Key, from.Key)
				require.NoError(t, err)
				assert.InEpsilon(t, 42.5, back, 1e-9, "%s: %s <-> %s", c.Key, from.Key, to.Key)
			}
		}
	}
}

func TestConvertReciprocalFactors(t *testing.T) {
	e := newEngine(t)

	ab, err := e.Convert(Length, 1, "yard", "meter")
	require.NoError(t, err)
	ba, err := e.Convert(Length, 1, "meter", "yard")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ab*ba, 1e-12)
}

func TestConvertErrors(t *testing.T) {
	e := newEngine(t)

	_, err := e.Convert("speed", 1, "a", "b")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = e.Convert(Length, 1, "mile", "kilogram")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = e.Convert(Temperature, 1, "delisle", Celsius)
	assert.ErrorIs(t, err, ErrUnknownUnit, "temperature units are checked against the table first")

	_, err = e.ConvertString(Length, "abc", "mile", "meter")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = e.ConvertString(Length, "  ", "mile", "meter")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestConvertString(t *testing.T) {
	e := newEngine(t)

	got, err := e.ConvertString(Temperature, " 100 ", Celsius, Fahrenheit)
	require.NoError(t, err)
	assert.Equal(t, 212.0, got)
}

func TestTemperatureFallback(t *testing.T) {
	assert.Equal(t, 25.0, ToCelsius(25, "unknown"))
	assert.Equal(t, 25.0, FromCelsius(25, "unknown"))
	assert.InDelta(t, 77.0, ConvertTemperature(25, "unknown", Fahrenheit), 1e-9)
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name  string
		table Category
	}{
		{"empty", Category{Key: "x", Base: "a"}},
		{"zero factor", Category{Key: "x", Base: "a", Units: []Unit{{Key: "a", Factor: 1}, {Key: "b"}}}},
		{"negative factor", Category{Key: "x", Base: "a", Units: []Unit{{Key: "a", Factor: 1}, {Key: "b", Factor: -2}}}},
		{"base not unit", Category{Key: "x", Base: "a", Units: []Unit{{Key: "a", Factor: 2}}}},
		{"missing base", Category{Key: "x", Base: "z", Units: []Unit{{Key: "a", Factor: 1}}}},
		{"duplicate unit", Category{Key: "x", Base: "a", Units: []Unit{{Key: "a", Factor: 1}, {Key: "a", Factor: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.table)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}

	t.Run("duplicate category", func(t *testing.T) {
		c := Category{Key: "x", Base: "a", Units: []Unit{{Key: "a", Factor: 1}}}
		_, err := NewEngine(c, c)
		assert.ErrorIs(t, err, ErrInvalidTable)
	})
}

func TestCategoriesOrder(t *testing.T) {
	e := newEngine(t)

	keys := []string{}
	for _, c := range e.Categories() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{Length, Weight, Temperature, Volume, Area, Time}, keys)

	c, ok := e.Category(Length)
	require.True(t, ok)
	u, ok := c.Unit("mile")
	require.True(t, ok)
	assert.Equal(t, "mi", u.Symbol)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.609344", Format(1.609344))
	assert.Equal(t, "212.000000", Format(212))
	assert.Equal(t, "0.333333", Format(1.0/3))
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, unit := range []string{Celsius, Fahrenheit, Kelvin, Rankine} {
		for _, v := range []float64{-459.67, -40, 0, 36.6, 100, 1e6} {
			assert.InDelta(t, v, FromCelsius(ToCelsius(v, unit), unit), 1e-9, "%s %v", unit, v)
		}
	}
}
