//go:build darwin
// +build darwin

package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// launchAgentLabel identifies the LaunchAgent in launchd.
const launchAgentLabel = "com.randombg.app"

// autostartEntryPath returns the LaunchAgent plist location.
func autostartEntryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel+".plist"), nil
}

// writeAutostartEntry writes the LaunchAgent plist launching the executable.
func writeAutostartEntry(path, exe string) error {
	return os.WriteFile(path, []byte(launchAgentPlist(exe)), 0644)
}

// launchAgentPlist renders the LaunchAgent property list contents.
func launchAgentPlist(exe string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple Computer//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`, launchAgentLabel, exe)
}
