package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain error", errors.New("boom"), KindUnknown},
		{"direct", New(KindParse, "parse timestamp", errors.New("bad")), KindParse},
		{"wrapped", fmt.Errorf("context: %w", New(KindIO, "read log", errors.New("eof"))), KindIO},
		{"with path", WithPath(KindDirectoryMissing, "stat", "/x", fs.ErrNotExist), KindDirectoryMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"usage", New(KindUsage, "parse arguments", errors.New("unknown command")), 2},
		{"io", New(KindIO, "write log", errors.New("disk full")), 1},
		{"clock", New(KindClock, "load location", errors.New("unknown zone")), 1},
		{"plain", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.expected {
				t.Errorf("ExitCode() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"op and err", New(KindIO, "read log", errors.New("eof")), "read log: eof"},
		{"op path err", WithPath(KindIO, "open log", "/tmp/a.tsv", errors.New("denied")), "open log /tmp/a.tsv: denied"},
		{"err only", &Error{Kind: KindIO, Err: errors.New("eof")}, "eof"},
		{"kind only", &Error{Kind: KindClock}, "clock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := WithPath(KindIO, "open log", "/nope", fs.ErrPermission)
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected errors.Is to see the wrapped error")
	}
}

func TestKind_String(t *testing.T) {
	if KindDirectoryMissing.String() != "directory missing" {
		t.Errorf("unexpected name %q", KindDirectoryMissing.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unexpected name %q", Kind(99).String())
	}
}
