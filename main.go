package main

import (
	"os"

	"github.com/xolan/timestamps/cmd"
	"github.com/xolan/timestamps/internal/apperr"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is swapped in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the CLI and returns the process exit status. Command
// handlers exit on their own; only flag errors come back here.
func run() int {
	cmd.SetVersionInfo(version, commit, date)
	return apperr.ExitCode(cmd.Execute())
}
