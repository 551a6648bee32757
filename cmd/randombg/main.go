package main

import (
	"github.com/dixieflatline76/RandomBG/config"
	"github.com/dixieflatline76/RandomBG/pkg/hotkey"
	"github.com/dixieflatline76/RandomBG/pkg/wallpaper"
	"github.com/dixieflatline76/RandomBG/service"
	"github.com/dixieflatline76/RandomBG/ui"
	"github.com/dixieflatline76/RandomBG/util/log"
)

func main() {
	// Ensure only one instance of the application is running at a time.
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	cfg := config.GetConfig()

	// The UI owns desktop notifications but is created after the scheduler,
	// so the notifier resolves the instance lazily.
	var trayApp *ui.App
	notify := func(title, message string) {
		if trayApp != nil {
			trayApp.Notify(title, message)
		}
	}

	scheduler := wallpaper.NewScheduler(cfg, notify)

	trayApp = ui.GetInstance(cfg, scheduler)
	if trayApp == nil {
		log.Fatalf("%s needs a system tray to run", config.AppName)
	}

	// Reconcile the login startup entry with the persisted setting.
	mgr := service.NewAutostartManager()
	if cfg.Settings().Autostart && !mgr.IsEnabled() {
		if err := mgr.Enable(); err != nil {
			log.Printf("Failed to register login startup entry: %v", err)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	hotkey.StartListeners(hotkey.Actions{
		Next:        scheduler.TriggerNext,
		TogglePause: trayApp.TogglePause,
	})

	trayApp.CheckForUpdates()
	trayApp.Run()
}
