package config

import "strings"

// AppVersion is the version of the application. Set at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "RandomBG"

// ServiceName is the identifier used for the single-instance lock and the fyne app ID.
const ServiceName = AppName

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the settings file inside the config directory.
const ConfigFileName = "config.json"

// Selection modes for the rotation picker.
const (
	ModeRandom     = "random"
	ModeSequential = "sequential"
)

// Documented defaults applied for missing or unreadable settings.
const (
	DefaultIntervalSeconds  = 300
	DefaultMode             = ModeRandom
	DefaultRandomMinSeconds = 60
	DefaultRandomMaxSeconds = 600
	MinIntervalSeconds      = 1
)
