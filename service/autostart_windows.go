//go:build windows
// +build windows

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/RandomBG/config"
)

// autostartEntryPath returns the Startup folder batch file location.
func autostartEntryPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", fmt.Errorf("APPDATA is not set")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup", config.AppName+".bat"), nil
}

// writeAutostartEntry writes a batch file that starts the executable
// detached, so the Startup folder does not keep a console window open.
func writeAutostartEntry(path, exe string) error {
	content := fmt.Sprintf("@echo off\r\nstart \"\" \"%s\"\r\n", exe)
	return os.WriteFile(path, []byte(content), 0644)
}
