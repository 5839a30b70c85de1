package conversion

// Category keys
const (
	Length      = "length"
	Weight      = "weight"
	Temperature = "temperature"
	Volume      = "volume"
	Area        = "area"
	Time        = "time"
)

// Temperature unit keys
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
	Rankine    = "rankine"
)

// DefaultCategories returns the built-in unit tables. Linear factors are
// relative to the category's base unit (factor 1).
func DefaultCategories() []Category {
	return []Category{
		{
			Key:  Length,
			Name: "Length",
			Base: "meter",
			Units: []Unit{
				{Key: "meter", Name: "Meter", Symbol: "m", Factor: 1},
				{Key: "kilometer", Name: "Kilometer", Symbol: "km", Factor: 1000},
				{Key: "centimeter", Name: "Centimeter", Symbol: "cm", Factor: 0.01},
				{Key: "millimeter", Name: "Millimeter", Symbol: "mm", Factor: 0.001},
				{Key: "inch", Name: "Inch", Symbol: "in", Factor: 0.0254},
				{Key: "foot", Name: "Foot", Symbol: "ft", Factor: 0.3048},
				{Key: "yard", Name: "Yard", Symbol: "yd", Factor: 0.9144},
				{Key: "mile", Name: "Mile", Symbol: "mi", Factor: 1609.344},
				{Key: "nautical_mile", Name: "Nautical Mile", Symbol: "nmi", Factor: 1852},
			},
		},
		{
			Key:  Weight,
			Name: "Weight",
			Base: "kilogram",
			Units: []Unit{
				{Key: "kilogram", Name: "Kilogram", Symbol: "kg", Factor: 1},
				{Key: "gram", Name: "Gram", Symbol: "g", Factor: 0.001},
				{Key: "pound", Name: "Pound", Symbol: "lb", Factor: 0.453592},
				{Key: "ounce", Name: "Ounce", Symbol: "oz", Factor: 0.0283495},
				{Key: "ton", Name: "Metric Ton", Symbol: "t", Factor: 1000},
				{Key: "stone", Name: "Stone", Symbol: "st", Factor: 6.35029},
				{Key: "short_ton", Name: "Short Ton", Symbol: "ton", Factor: 907.185},
				{Key: "long_ton", Name: "Long Ton", Symbol: "long ton", Factor: 1016.05},
			},
		},
		{
			Key:    Temperature,
			Name:   "Temperature",
			Base:   Celsius,
			Affine: true,
			Units: []Unit{
				{Key: Celsius, Name: "Celsius", Symbol: "°C"},
				{Key: Fahrenheit, Name: "Fahrenheit", Symbol: "°F"},
				{Key: Kelvin, Name: "Kelvin", Symbol: "K"},
				{Key: Rankine, Name: "Rankine", Symbol: "°R"},
			},
		},
		{
			Key:  Volume,
			Name: "Volume",
			Base: "liter",
			Units: []Unit{
				{Key: "liter", Name: "Liter", Symbol: "L", Factor: 1},
				{Key: "milliliter", Name: "Milliliter", Symbol: "mL", Factor: 0.001},
				{Key: "gallon_us", Name: "Gallon (US)", Symbol: "gal", Factor: 3.78541},
				{Key: "gallon_uk", Name: "Gallon (UK)", Symbol: "gal (UK)", Factor: 4.54609},
				{Key: "quart", Name: "Quart", Symbol: "qt", Factor: 0.946353},
				{Key: "pint", Name: "Pint", Symbol: "pt", Factor: 0.473176},
				{Key: "cup", Name: "Cup", Symbol: "cup", Factor: 0.236588},
				{Key: "fluid_ounce", Name: "Fluid Ounce", Symbol: "fl oz", Factor: 0.0295735},
				{Key: "cubic_meter", Name: "Cubic Meter", Symbol: "m³", Factor: 1000},
			},
		},
		{
			Key:  Area,
			Name: "Area",
			Base: "square_meter",
			Units: []Unit{
				{Key: "square_meter", Name: "Square Meter", Symbol: "m²", Factor: 1},
				{Key: "square_kilometer", Name: "Square Kilometer", Symbol: "km²", Factor: 1000000},
				{Key: "square_centimeter", Name: "Square Centimeter", Symbol: "cm²", Factor: 0.0001},
				{Key: "square_inch", Name: "Square Inch", Symbol: "in²", Factor: 0.00064516},
				{Key: "square_foot", Name: "Square Foot", Symbol: "ft²", Factor: 0.092903},
				{Key: "square_yard", Name: "Square Yard", Symbol: "yd²", Factor: 0.836127},
				{Key: "acre", Name: "Acre", Symbol: "ac", Factor: 4046.86},
				{Key: "hectare", Name: "Hectare", Symbol: "ha", Factor: 10000},
			},
		},
		{
			Key:  Time,
			Name: "Time",
			Base: "second",
			Units: []Unit{
				{Key: "second", Name: "Second", Symbol: "s", Factor: 1},
				{Key: "minute", Name: "Minute", Symbol: "min", Factor: 60},
				{Key: "hour", Name: "Hour", Symbol: "h", Factor: 3600},
				{Key: "day", Name: "Day", Symbol: "d", Factor: 86400},
				{Key: "week", Name: "Week", Symbol: "wk", Factor: 604800},
				{Key: "month", Name: "Month", Symbol: "mo", Factor: 2629746},
				{Key: "year", Name: "Year", Symbol: "yr", Factor: 31556952},
				{Key: "decade", Name: "Decade", Symbol: "decade", Factor: 315569520},
			},
		},
	}
}
