// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import "os"

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in storage.GetStoragePath and config.GetConfigPath.
type PathProvider interface {
	UserHomeDir() (string, error)
	UserConfigDir() (string, error)
	Stat(path string) (os.FileInfo, error)
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserHomeDir returns the current user's home directory.
func (DefaultPathProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Stat returns the FileInfo describing path.
func (DefaultPathProvider) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// IsDir reports whether path exists and is a directory, using Provider.
func IsDir(path string) bool {
	info, err := Provider.Stat(path)
	return err == nil && info.IsDir()
}
