//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// On macOS the conventional chord uses Cmd+Option instead of Ctrl+Alt.
const (
	modCtrl = hotkey.ModCmd
	modAlt  = hotkey.ModOption

	keyRight = hotkey.KeyRight
	keyUp    = hotkey.KeyUp
)
