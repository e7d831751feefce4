package weather

import "math"

// NoDirection is shown when the provider reports no wind bearing.
const NoDirection = "-"

// compassPoints is the 16-point rose, starting with N centered on 0°.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

const sectorWidth = 360.0 / float64(len(compassPoints))

// WindDirection resolves a bearing in degrees to its compass point. Each
// sector is 22.5° wide and centered on its point, so the half-sector offset is
// added before wrapping. Negative bearings wrap like any other angle.
func WindDirection(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return NoDirection
	}

	shifted := math.Mod(degrees+sectorWidth/2, 360)
	if shifted < 0 {
		shifted += 360
	}

	idx := int(math.Floor(shifted/sectorWidth)) % len(compassPoints)
	return compassPoints[idx]
}

// WindDirectionOf is WindDirection for an optional bearing.
func WindDirectionOf(degrees *float64) string {
	if degrees == nil {
		return NoDirection
	}
	return WindDirection(*degrees)
}
