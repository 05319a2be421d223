// Package cli provides the CLI presentation layer for the timestamps application.
// It handles command-line output formatting.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/timestamps/internal/entry"
)

// Styles contains the styles used for command output. Styles are bound to
// the writer they were created for, so colour is dropped when that writer
// is not a terminal.
type Styles struct {
	Success   lipgloss.Style
	Timestamp lipgloss.Style
	Duration  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

// NewStyles returns the default styles rendered for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	// Color palette
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		Success: r.NewStyle().
			Foreground(success).
			Bold(true),
		Timestamp: r.NewStyle().
			Foreground(secondary),
		Duration: r.NewStyle().
			Foreground(accent).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(muted),
		Error: r.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(warning).
			Bold(true),
	}
}

// FormatAdded formats the confirmation shown after an entry is appended.
// Example: "Added timestamp: Tue, 01 Jul 2025 10:30:00 +0000 (01:90:5400)"
func FormatAdded(s Styles, message string, e entry.Entry) string {
	return fmt.Sprintf("%s %s (%s)",
		s.Success.Render(message+":"),
		s.Timestamp.Render(entry.FormatTimestamp(e.Timestamp)),
		s.Duration.Render(entry.FormatDuration(e.Duration)))
}

// FormatSince formats the open entry a duration was measured from.
func FormatSince(s Styles, start entry.Entry) string {
	return s.Muted.Render("since " + entry.FormatTimestamp(start.Timestamp))
}

// FormatError formats the first line of an error report.
func FormatError(s Styles, summary string) string {
	return s.Error.Render("Error:") + " " + summary
}

// FormatWarning formats the first line of a warning.
func FormatWarning(s Styles, summary string) string {
	return s.Warning.Render("Warning:") + " " + summary
}
