//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// Global hotkeys are not reliably available across Linux display servers;
// registration with zero values fails cleanly and is logged.
const (
	modCtrl = hotkey.Modifier(0)
	modAlt  = hotkey.Modifier(0)

	keyRight = hotkey.Key(0)
	keyUp    = hotkey.Key(0)
)
