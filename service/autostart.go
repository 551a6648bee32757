package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Package service manages the platform autostart entry so RandomBG can
// launch with the user session. Each platform uses its native mechanism:
// a Startup batch file on Windows, an XDG autostart .desktop entry on
// Linux and a LaunchAgent plist on macOS.

// AutostartManager installs and removes the autostart entry for the
// current user.
type AutostartManager struct{}

// NewAutostartManager creates an AutostartManager.
func NewAutostartManager() *AutostartManager {
	return &AutostartManager{}
}

// IsEnabled reports whether an autostart entry currently exists.
func (m *AutostartManager) IsEnabled() bool {
	path, err := autostartEntryPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Enable installs the autostart entry pointing at the running executable.
func (m *AutostartManager) Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	path, err := autostartEntryPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating autostart directory: %w", err)
	}
	if err := writeAutostartEntry(path, exe); err != nil {
		return fmt.Errorf("writing autostart entry: %w", err)
	}
	return nil
}

// Disable removes the autostart entry. A missing entry is not an error.
func (m *AutostartManager) Disable() error {
	path, err := autostartEntryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing autostart entry: %w", err)
	}
	return nil
}
