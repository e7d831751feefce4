package weather

// Condition is one entry of the provider's "weather" list.
type Condition struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Reading is a single provider response for one location. It is built once per
// lookup, read to derive display values and then discarded.
type Reading struct {
	Location string `json:"location"`

	// Temperatures in Kelvin, as supplied by the provider.
	TemperatureK float64 `json:"temperatureK"`
	FeelsLikeK   float64 `json:"feelsLikeK"`
	TempMaxK     float64 `json:"tempMaxK"`
	TempMinK     float64 `json:"tempMinK"`

	HumidityPct int `json:"humidityPercent"` // not validated

	Conditions []Condition `json:"conditions"`

	WindSpeedMS float64  `json:"windSpeedMs"`
	WindBearing *float64 `json:"windBearing,omitempty"` // nil when the provider has no direction

	// Sun times as UNIX seconds (UTC).
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// PrimaryCondition returns the first reported condition, or the zero value
// when the provider sent none.
func (r Reading) PrimaryCondition() Condition {
	if len(r.Conditions) == 0 {
		return Condition{}
	}
	return r.Conditions[0]
}
