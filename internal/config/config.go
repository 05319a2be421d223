package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timestamps/internal/app"
	"github.com/xolan/timestamps/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultNotifyCommand is the external program used for desktop notifications
	DefaultNotifyCommand = "notify-send"
	// DefaultNotifyIcon is the icon passed to the notifier
	DefaultNotifyIcon = "appointment-soon"
)

// Config represents the application configuration
type Config struct {
	// LogFile overrides the log location. Empty means ~/Documents/timestamps.tsv.
	LogFile string `toml:"log_file"`
	// Timezone defines the timezone entries are stamped in (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// Notify configures the desktop notification sent after each entry
	Notify NotifyConfig `toml:"notify"`
}

// NotifyConfig configures the desktop notifier.
type NotifyConfig struct {
	Enabled bool   `toml:"enabled"`
	Command string `toml:"command"`
	Icon    string `toml:"icon"`
	// Strict makes a failed notification fail the whole run.
	Strict bool `toml:"strict"`
}

// DefaultConfig returns a Config with sensible defaults:
// - log_file: "" (~/Documents/timestamps.tsv)
// - timezone: "Local" (use system local timezone)
// - notify: enabled, notify-send, non-strict
func DefaultConfig() Config {
	return Config{
		LogFile:  "",
		Timezone: "Local",
		Notify: NotifyConfig{
			Enabled: true,
			Command: DefaultNotifyCommand,
			Icon:    DefaultNotifyIcon,
			Strict:  false,
		},
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory, e.g. ~/.config/timestamps/config.toml.
// The directory is not created; a missing file means defaults.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, app.Name, ConfigFile), nil
}

// Load reads the config file at path. Keys missing from the file keep their
// default values. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown config key(s): %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file at path, or returns DefaultConfig if
// the file doesn't exist. Any other failure is returned.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes the config in place and reports invalid values.
// The timezone name is only checked for emptiness here; it is resolved
// when the clock is read.
func (c *Config) Validate() error {
	c.LogFile = strings.TrimSpace(c.LogFile)
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}

	c.Notify.Command = strings.TrimSpace(c.Notify.Command)
	c.Notify.Icon = strings.TrimSpace(c.Notify.Icon)
	if c.Notify.Enabled && c.Notify.Command == "" {
		return fmt.Errorf("invalid notify.command: must not be empty when notifications are enabled")
	}

	if c.LogFile != "" && !filepath.IsAbs(c.LogFile) && !strings.HasPrefix(c.LogFile, "~/") {
		return fmt.Errorf("invalid log_file %q: must be an absolute path or start with ~/", c.LogFile)
	}
	return nil
}
