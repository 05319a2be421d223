package entry

import (
	"fmt"
	"time"
)

// ZeroDuration is the duration text of an open entry: a start awaiting a
// later timestamp.
const ZeroDuration = "00:00:00"

// Entry represents one line of the timestamp log
type Entry struct {
	Timestamp time.Time
	Duration  time.Duration
}

// Line returns the entry as it is stored, without the trailing newline:
// the timestamp, a tab, then the duration.
func (e Entry) Line() string {
	return FormatTimestamp(e.Timestamp) + "\t" + FormatDuration(e.Duration)
}

// FormatDuration renders d as "HH:MM:SS" where each field is the whole number
// of that unit in the full duration, not a clock breakdown: 90 minutes is
// "01:90:5400". Components truncate toward zero, so negative durations keep
// their sign in every field.
func FormatDuration(d time.Duration) string {
	hours := int64(d / time.Hour)
	minutes := int64(d / time.Minute)
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
