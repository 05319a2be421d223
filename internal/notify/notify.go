// Package notify shows a desktop notification after an entry is recorded by
// running an external program such as notify-send.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/xolan/timestamps/internal/apperr"
	"github.com/xolan/timestamps/internal/config"
)

const (
	// StartMessage is shown after record-start.
	StartMessage = "Added start timestamp"
	// TimestampMessage is shown after record-timestamp.
	TimestampMessage = "Added timestamp"
	// DefaultTimeout bounds a single notifier invocation.
	DefaultTimeout = 5 * time.Second
)

// Notifier delivers a short message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Runner runs an external program to completion.
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs name with args via os/exec. The program's stderr is
// included in the returned error.
func ExecRunner(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s timed out: %w", name, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// CommandNotifier runs Command as "<Command> -i <Icon> <message>".
type CommandNotifier struct {
	Command string
	Icon    string
	Timeout time.Duration
	Run     Runner
}

// Notify runs the notifier program. Failures are Notifier errors.
func (n *CommandNotifier) Notify(ctx context.Context, message string) error {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := n.Run
	if run == nil {
		run = ExecRunner
	}

	var args []string
	if n.Icon != "" {
		args = append(args, "-i", n.Icon)
	}
	args = append(args, message)

	if err := run(ctx, n.Command, args...); err != nil {
		return apperr.New(apperr.KindNotifier, "failed to run "+n.Command, err)
	}
	return nil
}

// Nop discards notifications.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, string) error { return nil }

// New returns the notifier described by cfg, or Nop when notifications are
// disabled. A nil run uses ExecRunner.
func New(cfg config.NotifyConfig, run Runner) Notifier {
	if !cfg.Enabled {
		return Nop{}
	}
	return &CommandNotifier{
		Command: cfg.Command,
		Icon:    cfg.Icon,
		Timeout: DefaultTimeout,
		Run:     run,
	}
}
