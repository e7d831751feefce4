package weather

import (
	"golang.org/x/text/cases"
)

// DefaultEmoji is used for categories without a dedicated symbol.
const DefaultEmoji = "🌡️"

var categoryEmoji = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"snow":         "❄️",
	"thunderstorm": "⛈️",
	"drizzle":      "🌦️",
	"mist":         "🌫️",
	"fog":          "🌫️",
}

// ConditionEmoji maps a provider category ("Clouds", "Rain", ...) to an emoji.
// Matching is exact after case folding; unknown categories get DefaultEmoji.
func ConditionEmoji(category string) string {
	if e, ok := categoryEmoji[cases.Fold().String(category)]; ok {
		return e
	}
	return DefaultEmoji
}
