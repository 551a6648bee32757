package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/RandomBG/config"
	"github.com/dixieflatline76/RandomBG/service"
	"github.com/dixieflatline76/RandomBG/util/log"
)

// intervalRegexp accepts whole numbers of seconds.
const intervalRegexp = `^[0-9]+$`

// ShowSettingsWindow opens the settings window, or focuses the existing one.
func (ra *App) ShowSettingsWindow() {
	ra.settingsMu.Lock()
	if ra.settingsOpen != nil {
		w := ra.settingsOpen
		ra.settingsMu.Unlock()
		fyne.Do(func() {
			w.RequestFocus()
		})
		return
	}
	ra.settingsMu.Unlock()

	fyne.Do(func() {
		ra.createSettingsWindow()
	})
}

func (ra *App) createSettingsWindow() {
	win := ra.app.NewWindow(fmt.Sprintf("%s Settings", config.AppName))
	win.Resize(fyne.NewSize(600, 640))
	win.CenterOnScreen()

	ra.settingsMu.Lock()
	ra.settingsOpen = win
	ra.settingsMu.Unlock()
	showDockIcon()

	win.SetOnClosed(func() {
		ra.settingsMu.Lock()
		ra.settingsOpen = nil
		ra.settingsMu.Unlock()
		hideDockIcon()
	})

	current := ra.cfg.Settings()

	content := container.NewVBox()
	content.Add(createSectionTitleLabel("Wallpaper Folder"))
	content.Add(createSettingDescriptionLabel("Pick the folder whose images rotate onto your desktop."))

	folderEntry := widget.NewEntry()
	folderEntry.SetText(current.Folder)
	browseButton := widget.NewButton("Browse...", func() {
		pickFolder(win, folderEntry.Text, func(path string) {
			folderEntry.SetText(path)
		})
	})
	content.Add(container.NewBorder(nil, nil, nil, browseButton, folderEntry))

	subdirsCheck := widget.NewCheck("Include subfolders", func(bool) {})
	subdirsCheck.SetChecked(current.IncludeSubdirs)
	content.Add(subdirsCheck)

	content.Add(widget.NewSeparator())
	content.Add(createSectionTitleLabel("Rotation"))

	modeSelect := widget.NewSelect([]string{"Random", "Sequential"}, func(string) {})
	if current.Mode == config.ModeSequential {
		modeSelect.SetSelectedIndex(1)
	} else {
		modeSelect.SetSelectedIndex(0)
	}
	content.Add(NewSplitRow(createSettingTitleLabel("Order:"), modeSelect, SplitProportion.OneThird))

	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.Itoa(current.IntervalSeconds))
	intervalEntry.Validator = validation.NewRegexp(intervalRegexp, "interval must be a whole number of seconds")
	content.Add(NewSplitRow(createSettingTitleLabel("Interval (seconds):"), intervalEntry, SplitProportion.OneThird))

	minEntry := widget.NewEntry()
	minEntry.SetText(strconv.Itoa(current.RandomMinSeconds))
	minEntry.Validator = validation.NewRegexp(intervalRegexp, "minimum must be a whole number of seconds")

	maxEntry := widget.NewEntry()
	maxEntry.SetText(strconv.Itoa(current.RandomMaxSeconds))
	maxEntry.Validator = validation.NewRegexp(intervalRegexp, "maximum must be a whole number of seconds")

	randomIntervalCheck := widget.NewCheck("Randomize the delay between changes", func(on bool) {
		if on {
			minEntry.Enable()
			maxEntry.Enable()
		} else {
			minEntry.Disable()
			maxEntry.Disable()
		}
	})
	randomIntervalCheck.SetChecked(current.RandomInterval)
	if !current.RandomInterval {
		minEntry.Disable()
		maxEntry.Disable()
	}
	content.Add(randomIntervalCheck)
	content.Add(NewSplitRow(createSettingTitleLabel("Minimum (seconds):"), minEntry, SplitProportion.OneThird))
	content.Add(NewSplitRow(createSettingTitleLabel("Maximum (seconds):"), maxEntry, SplitProportion.OneThird))

	content.Add(widget.NewSeparator())
	content.Add(createSectionTitleLabel("System"))

	autostartCheck := widget.NewCheck("Start when I log in", func(bool) {})
	autostartCheck.SetChecked(current.Autostart)
	content.Add(autostartCheck)

	browserSyncCheck := widget.NewCheck("Mirror wallpaper to browser new tab", func(bool) {})
	browserSyncCheck.SetChecked(current.BrowserSync)
	content.Add(browserSyncCheck)
	content.Add(createSettingDescriptionLabel("Keeps a shared copy of the current wallpaper for the companion browser extension."))

	statusLabel := widget.NewLabel("")

	applyButton := widget.NewButton("Apply", func() {
		next, err := ra.settingsFromForm(folderEntry.Text, modeSelect.SelectedIndex(),
			intervalEntry.Text, randomIntervalCheck.Checked, minEntry.Text, maxEntry.Text,
			subdirsCheck.Checked, autostartCheck.Checked, browserSyncCheck.Checked)
		if err != nil {
			statusLabel.SetText(err.Error())
			statusLabel.Importance = widget.DangerImportance
			statusLabel.Refresh()
			return
		}

		ra.applySettings(current, next)
		current = next

		statusLabel.SetText("Settings applied")
		statusLabel.Importance = widget.SuccessImportance
		statusLabel.Refresh()
	})

	closeButton := widget.NewButton("Close", func() {
		win.Close()
	})

	footer := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(statusLabel, layout.NewSpacer(), applyButton, closeButton),
	)

	win.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(content)))
	win.Show()
}

// settingsFromForm validates the raw widget state and builds a Settings value.
func (ra *App) settingsFromForm(folder string, modeIndex int, interval string, randomInterval bool, minStr, maxStr string, subdirs, autostart, browserSync bool) (config.Settings, error) {
	var s config.Settings

	if folder == "" {
		return s, fmt.Errorf("wallpaper folder must not be empty")
	}

	intervalSecs, err := strconv.Atoi(interval)
	if err != nil || intervalSecs < config.MinIntervalSeconds {
		return s, fmt.Errorf("interval must be at least %d second(s)", config.MinIntervalSeconds)
	}

	minSecs, minErr := strconv.Atoi(minStr)
	maxSecs, maxErr := strconv.Atoi(maxStr)
	if randomInterval {
		if minErr != nil || minSecs < config.MinIntervalSeconds {
			return s, fmt.Errorf("minimum interval must be at least %d second(s)", config.MinIntervalSeconds)
		}
		if maxErr != nil || maxSecs < minSecs {
			return s, fmt.Errorf("maximum interval must not be below the minimum")
		}
	} else {
		// The fields are disabled; whatever is left in them must not block
		// saving the rest of the form.
		if minErr != nil || minSecs < config.MinIntervalSeconds {
			minSecs = config.DefaultRandomMinSeconds
		}
		if maxErr != nil || maxSecs < minSecs {
			maxSecs = config.DefaultRandomMaxSeconds
			if maxSecs < minSecs {
				maxSecs = minSecs
			}
		}
	}

	s = config.Settings{
		Folder:           folder,
		IntervalSeconds:  intervalSecs,
		Mode:             config.ModeRandom,
		Autostart:        autostart,
		IncludeSubdirs:   subdirs,
		RandomInterval:   randomInterval,
		RandomMinSeconds: minSecs,
		RandomMaxSeconds: maxSecs,
		BrowserSync:      browserSync,
	}
	if modeIndex == 1 {
		s.Mode = config.ModeSequential
	}
	return s, nil
}

// applySettings persists the new settings and pushes them out to the
// scheduler and the autostart registration.
func (ra *App) applySettings(old, next config.Settings) {
	if err := ra.cfg.Update(next); err != nil {
		log.Printf("Failed to save settings: %v", err)
		ra.Notify(config.AppName, "Settings could not be saved")
	}

	if old.Autostart != next.Autostart {
		mgr := service.NewAutostartManager()
		var err error
		if next.Autostart {
			err = mgr.Enable()
		} else {
			err = mgr.Disable()
		}
		if err != nil {
			log.Printf("Failed to update autostart: %v", err)
			ra.Notify(config.AppName, "Could not update the login startup entry")
		}
	}

	go ra.scheduler.SettingsChanged()
}
