package weather

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp is returned for instants that fall outside the
// supported calendar range.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Supported range: years -262143 through 262142, inclusive.
var (
	minClockUnix = time.Date(-262143, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxClockUnix = time.Date(262142, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// FormatClock renders a UNIX timestamp as 24-hour "HH:MM" in loc. A nil loc
// means time.Local.
func FormatClock(unix int64, loc *time.Location) (string, error) {
	if unix < minClockUnix || unix > maxClockUnix {
		return "", fmt.Errorf("%w: %d", ErrInvalidTimestamp, unix)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(unix, 0).In(loc).Format("15:04"), nil
}
