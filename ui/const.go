package ui

import "time"

// aboutSplashTime is how long the about window stays on screen.
const aboutSplashTime = 3 * time.Second

// Tray menu labels. The pause item flips between the two pause labels
// depending on the scheduler state.
const (
	menuNextLabel     = "Next Wallpaper"
	menuPauseLabel    = "Pause Rotation"
	menuResumeLabel   = "Resume Rotation"
	menuSettingsLabel = "Settings"
	menuAboutLabel    = "About RandomBG"
	menuQuitLabel     = "Quit"
)

// updateMenuItemPrefix is the copy for the new update available tray menu item
const updateMenuItemPrefix = "Update to "
