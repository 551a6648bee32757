//go:build linux
// +build linux

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/RandomBG/config"
)

// autostartEntryPath returns the XDG autostart entry location.
func autostartEntryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "autostart", config.AppName+".desktop"), nil
}

// writeAutostartEntry writes the .desktop entry launching the executable.
func writeAutostartEntry(path, exe string) error {
	return os.WriteFile(path, []byte(desktopEntry(exe)), 0644)
}

// desktopEntry renders the XDG autostart desktop file contents.
func desktopEntry(exe string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec="%s"
X-GNOME-Autostart-enabled=true
Terminal=false
`, config.AppName, exe)
}
