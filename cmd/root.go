package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/timestamps/internal/apperr"
	"github.com/xolan/timestamps/internal/cli"
)

const usageText = `Usage:
  timestamps          Append a timestamp with the time elapsed since the last start
  timestamps start    Append a start timestamp (duration 00:00:00)

Flags:
  --config <path>     Use an alternative config file (optional)
  --no-notify         Don't show a desktop notification
  --version           Print version information

Entries are appended to ~/Documents/timestamps.tsv. The Documents directory
must already exist; the log file is created on first use.

A config file is optional and not needed for the default behaviour. If
present, <user config dir>/timestamps/config.toml can change the log path,
the timezone and the notifier.`

var (
	configFlag   string
	noNotifyFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "timestamps [start]",
	Short: "Append timestamps to a tab-separated log",
	Long: `timestamps is a minimal time tracker. Each run appends one line to a
tab-separated log: the current time and the time elapsed since the most
recent start entry.

` + usageText,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			unknownCommand(args)
			return
		}
		recordTimestamp()
	},
}

// helpCmd replaces cobra's help subcommand: "help" is not a valid argument.
var helpCmd = &cobra.Command{
	Use:    "help",
	Hidden: true,
	Args:   cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		unknownCommand(append([]string{"help"}, args...))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "optional config file, not needed for default behaviour (default is <user config dir>/timestamps/config.toml if it exists)")
	rootCmd.PersistentFlags().BoolVar(&noNotifyFlag, "no-notify", false, "don't show a desktop notification")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(startCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timestamps version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command. Flag errors are returned as usage errors;
// all other failures are reported and exit through deps.Exit.
func Execute() error {
	return rootCmd.Execute()
}

// unknownCommand reports unrecognised positional arguments and exits with
// the usage status. The log file is not touched.
func unknownCommand(args []string) {
	styles := cli.NewStyles(deps.Stderr)
	_, _ = fmt.Fprintln(deps.Stderr, cli.FormatError(styles, "Unknown command: "+strings.Join(args, " ")))
	printUsage(deps.Stderr)
	deps.Exit(apperr.ExitCode(apperr.New(apperr.KindUsage, "unknown command", nil)))
}

func flagError(cmd *cobra.Command, err error) error {
	styles := cli.NewStyles(deps.Stderr)
	_, _ = fmt.Fprintln(deps.Stderr, cli.FormatError(styles, err.Error()))
	printUsage(deps.Stderr)
	return apperr.New(apperr.KindUsage, "invalid flags", err)
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, usageText)
}
