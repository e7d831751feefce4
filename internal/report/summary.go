package report

import (
	"fmt"
	"math"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

// Summary holds the display-ready values derived from one reading.
type Summary struct {
	Location    string
	Emoji       string
	Description string

	Unit        weather.TemperatureUnit
	Temperature float64
	FeelsLike   float64
	High        float64
	Low         float64

	HumidityPct int

	WindKmh       float64
	WindDirection string

	Sunrise string // HH:MM, local time
	Sunset  string
}

// Build converts r for display. unit is applied to all four temperatures and
// sun times are rendered in loc (time.Local when nil).
func Build(r weather.Reading, unit weather.TemperatureUnit, loc *time.Location) (Summary, error) {
	sunrise, err := weather.FormatClock(r.Sunrise, loc)
	if err != nil {
		return Summary{}, fmt.Errorf("sunrise: %w", err)
	}
	sunset, err := weather.FormatClock(r.Sunset, loc)
	if err != nil {
		return Summary{}, fmt.Errorf("sunset: %w", err)
	}

	cond := r.PrimaryCondition()

	return Summary{
		Location:      r.Location,
		Emoji:         weather.ConditionEmoji(cond.Category),
		Description:   cond.Description,
		Unit:          unit,
		Temperature:   unit.FromKelvin(r.TemperatureK),
		FeelsLike:     unit.FromKelvin(r.FeelsLikeK),
		High:          unit.FromKelvin(r.TempMaxK),
		Low:           unit.FromKelvin(r.TempMinK),
		HumidityPct:   r.HumidityPct,
		WindKmh:       weather.MetersPerSecondToKmh(r.WindSpeedMS),
		WindDirection: weather.WindDirectionOf(r.WindBearing),
		Sunrise:       sunrise,
		Sunset:        sunset,
	}, nil
}

// SplitTemperature returns the sign ("-" or "") and the one-decimal magnitude
// of v. Negative zero has no sign; values in (-0.05, 0) keep theirs, so
// -0.04 renders as "-0.0".
func SplitTemperature(v float64) (sign, magnitude string) {
	if v < 0 {
		sign = "-"
	}
	return sign, fmt.Sprintf("%.1f", math.Abs(v))
}

// FormatTemperature is SplitTemperature joined, without a unit.
func FormatTemperature(v float64) string {
	sign, mag := SplitTemperature(v)
	return sign + mag
}
