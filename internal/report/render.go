package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// emojiColumn is the display width reserved for the leading emoji, so labels
// line up whether or not the terminal draws the emoji double-width.
const emojiColumn = 3

// emojiWidth measures with narrow East Asian widths regardless of the
// process locale.
var emojiWidth = &runewidth.Condition{EastAsianWidth: false}

// Options controls rendering.
type Options struct {
	NoColor bool
}

type palette struct {
	header, location, description, temperature, humidity, wind, sun *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		header:      color.New(color.Bold, color.Underline),
		location:    color.New(color.FgHiBlue),
		description: color.New(color.FgHiYellow),
		temperature: color.New(color.FgHiGreen),
		humidity:    color.New(color.FgHiCyan),
		wind:        color.New(color.FgHiMagenta),
		sun:         color.New(color.FgHiYellow),
	}
	for _, c := range []*color.Color{p.header, p.location, p.description, p.temperature, p.humidity, p.wind, p.sun} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// Render writes the report for s to w in a single write.
func Render(w io.Writer, s Summary, opts Options) error {
	p := newPalette(opts.NoColor)
	unit := s.Unit.Symbol()

	temp := func(v float64) string {
		sign, mag := SplitTemperature(v)
		return sign + p.temperature.Sprint(mag) + unit
	}

	var b strings.Builder
	line := func(emoji, label, value string) {
		fmt.Fprintf(&b, "%s%s: %s\n", emojiWidth.FillRight(emoji, emojiColumn), label, value)
	}

	fmt.Fprintf(&b, "\n%s\n", p.header.Sprint("Current Weather"))
	line("🌍", "Location", p.location.Sprint(s.Location))
	line(s.Emoji, "Weather", p.description.Sprint(s.Description))
	line("🌡️", "Temperature", temp(s.Temperature))
	line("🤔", "Feels like", temp(s.FeelsLike))
	line("🌡️", "Today's High/Low", temp(s.High)+"/"+temp(s.Low))
	line("💧", "Humidity", p.humidity.Sprint(strconv.Itoa(s.HumidityPct))+"%")
	line("🌪️", "Wind", fmt.Sprintf("%s km/h from %s",
		p.wind.Sprint(fmt.Sprintf("%.1f", s.WindKmh)),
		p.wind.Sprint(s.WindDirection),
	))
	line("🌅", "Sunrise", p.sun.Sprint(s.Sunrise))
	line("🌇", "Sunset", p.sun.Sprint(s.Sunset))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
