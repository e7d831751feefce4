package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// New returns a logger writing to w. Diagnostics stay off stdout so the report
// is the only thing printed there. Warnings and errors are always shown;
// verbose enables debug output.
func New(w io.Writer, verbose bool, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
	return slog.New(h).With("run", uuid.NewString())
}
