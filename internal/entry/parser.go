package entry

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout entries are written with,
// e.g. "Tue, 01 Jul 2025 09:15:00 +0000".
const TimestampLayout = time.RFC1123Z

// parseLayout accepts the written form as well as an unpadded day of month.
const parseLayout = "Mon, _2 Jan 2006 15:04:05 -0700"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses the timestamp field of a log line.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, expected format like %q: %w", s, TimestampLayout, err)
	}
	return t, nil
}

// SplitLine splits a log line on its first tab into the timestamp text and
// the duration text. ok is false when the line has no tab.
func SplitLine(line string) (timestamp, duration string, ok bool) {
	return strings.Cut(line, "\t")
}
