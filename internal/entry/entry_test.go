package entry

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"sub-second", 500 * time.Millisecond, "00:00:00"},
		{"seconds", 42 * time.Second, "00:00:42"},
		{"one minute", time.Minute, "00:01:60"},
		{"90 minutes is whole units, not a clock", 90 * time.Minute, "01:90:5400"},
		{"5h30m10s", 5*time.Hour + 30*time.Minute + 10*time.Second, "05:330:19810"},
		{"truncates partial units", time.Hour + 59*time.Minute + 59*time.Second + 900*time.Millisecond, "01:119:7199"},
		{"more than 99 hours", 100 * time.Hour, "100:6000:360000"},
		{"negative seconds", -30 * time.Second, "00:00:-30"},
		{"negative hours", -(2*time.Hour + 30*time.Second), "-2:-120:-7230"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, expected %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestEntry_Line(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name:     "open entry",
			entry:    Entry{Timestamp: time.Date(2025, time.July, 1, 9, 15, 0, 0, time.UTC)},
			expected: "Tue, 01 Jul 2025 09:15:00 +0000\t00:00:00",
		},
		{
			name: "closed entry with offset",
			entry: Entry{
				Timestamp: time.Date(2025, time.July, 1, 10, 45, 0, 0, time.FixedZone("CEST", 2*60*60)),
				Duration:  90 * time.Minute,
			},
			expected: "Tue, 01 Jul 2025 10:45:00 +0200\t01:90:5400",
		},
		{
			name:     "negative offset, sub-second dropped",
			entry:    Entry{Timestamp: time.Date(2024, time.December, 25, 23, 5, 9, 999, time.FixedZone("", -5*60*60-30*60))},
			expected: "Wed, 25 Dec 2024 23:05:09 -0530\t00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Line(); got != tt.expected {
				t.Errorf("Line() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
