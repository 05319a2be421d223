package cmd

import (
	"io"
	"os"
	"time"

	"github.com/xolan/timestamps/internal/config"
	"github.com/xolan/timestamps/internal/notify"
	"github.com/xolan/timestamps/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
	// ConfigPath returns the default config file location.
	ConfigPath func() (string, error)
	// StoragePath resolves the log file from the configured override.
	StoragePath func(override string) (string, error)
	// Now reads the wall clock.
	Now func() time.Time
	// RunCommand runs the external notifier program.
	RunCommand notify.Runner
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Exit:        os.Exit,
		ConfigPath:  config.GetConfigPath,
		StoragePath: storage.ResolvePath,
		Now:         time.Now,
		RunCommand:  notify.ExecRunner,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
