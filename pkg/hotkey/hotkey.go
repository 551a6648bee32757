package hotkey

import (
	"time"

	"golang.design/x/hotkey"

	"github.com/dixieflatline76/RandomBG/util/log"
)

// Actions are the rotation controls reachable through global hotkeys.
type Actions struct {
	Next        func() // immediately change the wallpaper
	TogglePause func() // pause or resume automatic rotation
}

// StartListeners initializes and starts the global hotkey listeners.
// It registers shortcuts for Next (Ctrl+Alt+Right) and Pause/Resume
// (Ctrl+Alt+Up). Registration failures are logged, not fatal; the tray
// menu always remains available.
func StartListeners(actions Actions) {
	hkNext := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyRight)
	hkPause := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyUp)

	// Helper to register and listen
	registerAndListen := func(hk *hotkey.Hotkey, name string, action func()) {
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register hotkey %s: %v", name, err)
			return
		}
		log.Printf("Registered hotkey: %s", name)

		go func() {
			for range hk.Keydown() {
				log.Debugf("Hotkey pressed: %s", name)
				action()
				time.Sleep(200 * time.Millisecond)
			}
		}()
	}

	if actions.Next != nil {
		registerAndListen(hkNext, "Next Wallpaper", actions.Next)
	}
	if actions.TogglePause != nil {
		registerAndListen(hkPause, "Pause Rotation", actions.TogglePause)
	}
}
