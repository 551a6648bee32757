package ui

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/RandomBG/asset"
	"github.com/dixieflatline76/RandomBG/config"
	"github.com/dixieflatline76/RandomBG/pkg/wallpaper"
	"github.com/dixieflatline76/RandomBG/util"
	"github.com/dixieflatline76/RandomBG/util/log"
)

// App represents the tray application.
type App struct {
	app       fyne.App
	assetMgr  *asset.Manager
	trayMenu  *fyne.Menu
	cfg       *config.Config
	scheduler *wallpaper.Scheduler

	pauseItem  *fyne.MenuItem
	trayIcon   fyne.Resource
	pausedIcon fyne.Resource

	settingsMu   sync.Mutex
	settingsOpen fyne.Window
}

var (
	instance *App      // Singleton instance of the application
	once     sync.Once // Ensures the singleton is created only once
)

// GetInstance returns the singleton instance of the application. It returns
// nil when the platform has no system tray support.
func GetInstance(cfg *config.Config, scheduler *wallpaper.Scheduler) *App {
	a := app.NewWithID(config.ServiceName)
	if _, ok := a.(desktop.App); !ok {
		log.Println("Tray icon not supported on this platform")
		return nil
	}
	once.Do(func() {
		instance = &App{
			app:       a,
			assetMgr:  asset.NewManager(),
			cfg:       cfg,
			scheduler: scheduler,
		}
		instance.loadIcons()
		instance.createTrayMenu()
	})
	return instance
}

func (ra *App) loadIcons() {
	var err error
	ra.trayIcon, err = ra.assetMgr.GetIcon(asset.TrayIcon)
	if err != nil {
		log.Fatalf("Failed to load tray icon: %v", err)
	}
	ra.pausedIcon, err = ra.assetMgr.GetIcon(asset.TrayPausedIcon)
	if err != nil {
		log.Printf("Failed to load paused tray icon: %v", err)
		ra.pausedIcon = ra.trayIcon
	}
}

// createTrayMenu creates the tray menu for the application
func (ra *App) createTrayMenu() {
	desk := ra.app.(desktop.App)

	ra.pauseItem = fyne.NewMenuItem(menuPauseLabel, func() {
		paused := ra.scheduler.TogglePause()
		ra.refreshPauseState(paused)
	})

	trayMenu := fyne.NewMenu(
		config.ServiceName,
		fyne.NewMenuItem(menuNextLabel, func() {
			go ra.scheduler.TriggerNext()
		}),
		ra.pauseItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(menuSettingsLabel, func() {
			go ra.ShowSettingsWindow()
		}),
		fyne.NewMenuItem(menuAboutLabel, func() {
			go ra.showAboutWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(menuQuitLabel, func() {
			ra.scheduler.Stop()
			ra.app.Quit()
		}),
	)
	desk.SetSystemTrayMenu(trayMenu)
	desk.SetSystemTrayIcon(ra.trayIcon)
	ra.app.SetIcon(ra.trayIcon)
	ra.trayMenu = trayMenu
}

// refreshPauseState flips the pause menu label and tray icon to reflect the
// scheduler state.
func (ra *App) refreshPauseState(paused bool) {
	desk := ra.app.(desktop.App)
	if paused {
		ra.pauseItem.Label = menuResumeLabel
		desk.SetSystemTrayIcon(ra.pausedIcon)
	} else {
		ra.pauseItem.Label = menuPauseLabel
		desk.SetSystemTrayIcon(ra.trayIcon)
	}
	ra.trayMenu.Refresh()
}

// TogglePause pauses or resumes rotation and updates the tray to match.
// Safe to call from any goroutine, including hotkey listeners.
func (ra *App) TogglePause() {
	paused := ra.scheduler.TogglePause()
	fyne.Do(func() {
		ra.refreshPauseState(paused)
	})
}

// Notify shows a desktop notification.
func (ra *App) Notify(title, message string) {
	ra.app.SendNotification(fyne.NewNotification(title, message))
}

// showAboutWindow shows a small about splash with the current version.
func (ra *App) showAboutWindow() {
	drv, ok := ra.app.Driver().(desktop.Driver)
	if !ok {
		log.Println("About splash not supported")
		return
	}

	aboutWindow := drv.CreateSplashWindow()

	img, err := ra.assetMgr.GetImage(asset.TrayIcon)
	if err != nil {
		log.Printf("Failed to load about image: %v", err)
		return
	}

	icon := canvas.NewImageFromImage(img)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(96, 96))

	name := widget.NewLabel(config.AppName)
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter

	version := widget.NewLabel(fmt.Sprintf("Version: %s", config.AppVersion))
	version.Alignment = fyne.TextAlignCenter

	aboutWindow.SetContent(container.NewVBox(icon, name, version))
	aboutWindow.CenterOnScreen()
	aboutWindow.Show()

	go func() {
		time.Sleep(aboutSplashTime)
		fyne.Do(func() {
			aboutWindow.Close()
		})
	}()
}

// CheckForUpdates polls GitHub for a newer release in the background and,
// if one exists, adds an update item to the top of the tray menu.
func (ra *App) CheckForUpdates() {
	go func() {
		result, err := util.CheckForUpdates(context.Background())
		if err != nil {
			log.Printf("Update check failed: %v", err)
			return
		}
		if !result.UpdateAvailable {
			log.Debugf("No update available, current %s latest %s", result.CurrentVersion, result.LatestVersion)
			return
		}

		releaseURL, err := url.Parse(result.ReleaseURL)
		if err != nil {
			log.Printf("Bad release URL %q: %v", result.ReleaseURL, err)
			return
		}

		updateItem := fyne.NewMenuItem(updateMenuItemPrefix+result.LatestVersion, func() {
			if err := ra.app.OpenURL(releaseURL); err != nil {
				log.Printf("Failed to open release page: %v", err)
			}
		})

		fyne.Do(func() {
			ra.trayMenu.Items = append([]*fyne.MenuItem{updateItem, fyne.NewMenuItemSeparator()}, ra.trayMenu.Items...)
			ra.trayMenu.Refresh()
			ra.Notify(config.AppName, fmt.Sprintf("Version %s is available", result.LatestVersion))
		})
	}()
}

// Run runs the application
func (ra *App) Run() {
	ra.app.Run()
}
