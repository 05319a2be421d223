// Package apperr defines the closed set of failure kinds a run can end with.
// Callers distinguish failures with KindOf instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in this module.
	KindUnknown Kind = iota
	// KindHomeDirectoryUnavailable means the user's home directory could not be determined.
	KindHomeDirectoryUnavailable
	// KindDirectoryMissing means the directory holding the log file does not exist.
	KindDirectoryMissing
	// KindIO covers open, read, seek and write failures on the log file.
	KindIO
	// KindClock means the current time could not be placed in a time zone.
	KindClock
	// KindParse means the timestamp of the matched open entry is malformed.
	KindParse
	// KindNotifier means the external notifier could not be run.
	KindNotifier
	// KindConfig means the config file could not be read or is invalid.
	KindConfig
	// KindUsage means the command line was not understood.
	KindUsage
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindHomeDirectoryUnavailable: "home directory unavailable",
	KindDirectoryMissing:         "directory missing",
	KindIO:                       "i/o",
	KindClock:                    "clock",
	KindParse:                    "parse",
	KindNotifier:                 "notifier",
	KindConfig:                   "config",
	KindUsage:                    "usage",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a failure tagged with its Kind.
type Error struct {
	Kind Kind
	Op   string // operation being performed, e.g. "open log"
	Path string // file involved, if any
	Err  error
}

// New wraps err with a kind and the operation that failed.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// WithPath wraps err with a kind, the failed operation and the file involved.
func WithPath(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	if msg == "" {
		return e.Kind.String()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the outermost *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps err to the process exit status: 0 for nil, 2 for usage
// errors and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Is(err, KindUsage):
		return 2
	default:
		return 1
	}
}
