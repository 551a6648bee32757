//go:build darwin
// +build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// setWallpaper sets the desktop wallpaper on macOS.
func (m *macOSOS) setWallpaper(imagePath string) error {
	// Use AppleScript to set the wallpaper
	script := fmt.Sprintf(`
                tell application "Finder"
                        set desktop picture to POSIX file "%s"
                end tell
        `, imagePath)

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	return nil
}

// screensaverActive reports whether the macOS screensaver is running.
// ScreenSaverEngine only exists as a process while the screensaver is active.
func (m *macOSOS) screensaverActive() bool {
	err := exec.Command("pgrep", "-x", "ScreenSaverEngine").Run()
	return err == nil
}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}
