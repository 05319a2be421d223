package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/xolan/timestamps/internal/apperr"
	"github.com/xolan/timestamps/internal/cli"
	"github.com/xolan/timestamps/internal/config"
	"github.com/xolan/timestamps/internal/entry"
	"github.com/xolan/timestamps/internal/notify"
	"github.com/xolan/timestamps/internal/service"
	"github.com/xolan/timestamps/internal/timeutil"
)

// failure describes how an error kind is reported to the user.
type failure struct {
	summary string
	hint    string
}

var failures = map[apperr.Kind]failure{
	apperr.KindHomeDirectoryUnavailable: {
		summary: "Failed to determine home directory",
		hint:    "Check that $HOME is set",
	},
	apperr.KindDirectoryMissing: {
		summary: "Log directory does not exist",
		hint:    "Create the directory first; it is never created automatically",
	},
	apperr.KindIO: {
		summary: "Failed to access the log file",
		hint:    "Check that the file is readable and writable",
	},
	apperr.KindClock: {
		summary: "Failed to determine the current time",
		hint:    "Check the timezone setting in your config file",
	},
	apperr.KindParse: {
		summary: "Failed to parse the most recent start entry",
		hint:    "Fix or remove the last line ending in 00:00:00 in the log file",
	},
	apperr.KindNotifier: {
		summary: "Failed to show notification",
		hint:    "The entry was saved. Use --no-notify or set notify.enabled = false to skip notifications",
	},
	apperr.KindConfig: {
		summary: "Failed to load configuration",
		hint:    "Check that your config file is valid TOML format",
	},
}

// recordStart appends a start entry
func recordStart() {
	svc, cfg, ok := newRecorder()
	if !ok {
		return
	}

	e, err := svc.Start()
	if err != nil {
		reportError(err)
		return
	}

	announce(notify.StartMessage, e, nil, cfg)
}

// recordTimestamp appends an entry measured from the most recent start
func recordTimestamp() {
	svc, cfg, ok := newRecorder()
	if !ok {
		return
	}

	result, err := svc.Stamp()
	if err != nil {
		reportError(err)
		return
	}

	announce(notify.TimestampMessage, result.Entry, result.Start, cfg)
}

// newRecorder loads the config and resolves the log path. Failures are
// reported and ok is false.
func newRecorder() (svc *service.RecorderService, cfg config.Config, ok bool) {
	cfg, err := loadConfig()
	if err != nil {
		reportError(err)
		return nil, cfg, false
	}

	storagePath, err := deps.StoragePath(cfg.LogFile)
	if err != nil {
		reportError(err)
		return nil, cfg, false
	}

	clock := timeutil.Clock{Timezone: cfg.Timezone, Now: deps.Now}
	return service.NewRecorderService(storagePath, clock), cfg, true
}

// loadConfig loads the file named by --config, or the default config file
// if it exists. A default location that cannot be determined means defaults.
func loadConfig() (config.Config, error) {
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return config.DefaultConfig(), apperr.WithPath(apperr.KindConfig, "load config", configFlag, err)
		}
		return cfg, nil
	}

	configPath, err := deps.ConfigPath()
	if err != nil {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return config.DefaultConfig(), apperr.WithPath(apperr.KindConfig, "load config", configPath, err)
	}
	return cfg, nil
}

// announce prints the confirmation line and sends the desktop notification.
func announce(message string, e entry.Entry, start *entry.Entry, cfg config.Config) {
	styles := cli.NewStyles(deps.Stdout)
	line := cli.FormatAdded(styles, message, e)
	if start != nil {
		line += " " + cli.FormatSince(styles, *start)
	}
	_, _ = fmt.Fprintln(deps.Stdout, line)

	if noNotifyFlag {
		return
	}

	n := notify.New(cfg.Notify, deps.RunCommand)
	if err := n.Notify(context.Background(), message); err != nil {
		if cfg.Notify.Strict {
			reportError(err)
			return
		}
		warnNotifyFailed(err)
	}
}

// reportError prints err with a summary and hint for its kind, then exits
// with the matching status.
func reportError(err error) {
	f, ok := failures[apperr.KindOf(err)]
	if !ok {
		f = failure{summary: "Unexpected failure"}
	}

	styles := cli.NewStyles(deps.Stderr)
	_, _ = fmt.Fprintln(deps.Stderr, cli.FormatError(styles, f.summary))
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	if hint := hintFor(err, f); hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(apperr.ExitCode(err))
}

func hintFor(err error, f failure) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind == apperr.KindDirectoryMissing && e.Path != "" {
		return fmt.Sprintf("Create %s first; it is never created automatically", e.Path)
	}
	return f.hint
}

func warnNotifyFailed(err error) {
	styles := cli.NewStyles(deps.Stderr)
	_, _ = fmt.Fprintln(deps.Stderr, cli.FormatWarning(styles, "Timestamp saved but notification failed"))
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
}
