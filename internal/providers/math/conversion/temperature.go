package conversion

// ToCelsius maps a temperature to Celsius. Unknown units are treated as
// already Celsius.
func ToCelsius(value float64, unit string) float64 {
	switch unit {
	case Fahrenheit:
		return (value - 32) * 5 / 9
	case Kelvin:
		return value - 273.15
	case Rankine:
		return (value - 491.67) * 5 / 9
	default:
		return value
	}
}

// FromCelsius maps a Celsius temperature to unit. Unknown units receive the
// Celsius value unchanged.
func FromCelsius(celsius float64, unit string) float64 {
	switch unit {
	case Fahrenheit:
		return celsius*9/5 + 32
	case Kelvin:
		return celsius + 273.15
	case Rankine:
		return celsius*9/5 + 491.67
	default:
		return celsius
	}
}

// ConvertTemperature runs the two-stage pipeline through Celsius
func ConvertTemperature(value float64, from, to string) float64 {
	if from == to {
		return value
	}
	return FromCelsius(ToCelsius(value, from), to)
}
