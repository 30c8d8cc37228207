// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// AppName is the directory name used under the user config directory
const AppName = "sip"

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in AppDir and config.GetConfigPath.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Expand(path string) (string, error)
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Expand replaces a leading ~ with the current user's home directory.
func (DefaultPathProvider) Expand(path string) (string, error) {
	return homedir.Expand(path)
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

// AppDir returns the directory holding sip's data files and creates it if needed.
// A non-empty override (from the data_dir setting) wins over the XDG config directory.
func AppDir(override string) (string, error) {
	var dir string
	if override != "" {
		expanded, err := Provider.Expand(override)
		if err != nil {
			return "", err
		}
		dir = expanded
	} else {
		configDir, err := Provider.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(configDir, AppName)
	}

	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}
