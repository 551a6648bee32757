package wallpaper

// OS defines the operating system specific operations.
type OS interface {
	// setWallpaper applies the image at the given absolute path as the
	// desktop background.
	setWallpaper(path string) error
	// screensaverActive reports whether a screensaver is currently
	// running. Best effort; implementations return false when unsure.
	screensaverActive() bool
}

// Notifier is a function that surfaces a transient message to the user,
// typically as a tray notification.
type Notifier func(title, message string)

// State is the lifecycle state of the rotation scheduler.
type State int

// Scheduler states.
const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
