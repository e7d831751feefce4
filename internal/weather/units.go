package weather

// absoluteZeroC is 0 K expressed in degrees Celsius.
const absoluteZeroC = 273.15

// TemperatureUnit selects how Kelvin readings are displayed. One unit is
// chosen per lookup and applied to every temperature field.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

// UnitFor maps the --fahrenheit flag to a TemperatureUnit.
func UnitFor(fahrenheit bool) TemperatureUnit {
	if fahrenheit {
		return Fahrenheit
	}
	return Celsius
}

// FromKelvin converts k into the unit.
func (u TemperatureUnit) FromKelvin(k float64) float64 {
	if u == Fahrenheit {
		return KelvinToFahrenheit(k)
	}
	return KelvinToCelsius(k)
}

// Symbol returns the display suffix, e.g. "°C".
func (u TemperatureUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func (u TemperatureUnit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

func KelvinToCelsius(k float64) float64 {
	return k - absoluteZeroC
}

func KelvinToFahrenheit(k float64) float64 {
	return KelvinToCelsius(k)*9/5 + 32
}

func MetersPerSecondToKmh(mps float64) float64 {
	return mps * 3.6
}
