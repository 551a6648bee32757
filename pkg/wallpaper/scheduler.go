package wallpaper

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/dixieflatline76/RandomBG/config"
	"github.com/dixieflatline76/RandomBG/util"
	"github.com/dixieflatline76/RandomBG/util/log"
	"golang.org/x/time/rate"
)

// Scheduler drives the rotation loop: on every tick it lists the configured
// folder, picks the next image and hands it to the OS wallpaper call. All
// triggers (timer, manual next, settings changes) funnel into one consumer
// goroutine, so no two ticks ever run concurrently and the rotation state
// is never mutated re-entrantly.
//
// Timer policy: any trigger, scheduled or manual, re-arms the timer to fire
// one full interval later. A manual "next" therefore pushes the following
// automatic change out by the configured interval.
type Scheduler struct {
	cfg     *config.Config
	os      OS
	picker  *Picker
	browser *BrowserSync
	notify  Notifier

	state      *util.SafeCounter
	ticking    *util.SafeFlag
	manualGate *rate.Limiter

	nextCh     chan struct{}
	settingsCh chan struct{}
	quit       chan struct{}
	done       chan struct{}

	mu         sync.Mutex
	current    string
	lastFolder string

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewScheduler creates a Scheduler for the current platform.
func NewScheduler(cfg *config.Config, notify Notifier) *Scheduler {
	return newScheduler(cfg, getOS(), notify)
}

func newScheduler(cfg *config.Config, osImpl OS, notify Notifier) *Scheduler {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &Scheduler{
		cfg:        cfg,
		os:         osImpl,
		picker:     NewPicker(cfg.Settings().Mode),
		browser:    NewBrowserSync(),
		notify:     notify,
		state:      util.NewSafeIntWithValue(int(StateStopped)),
		ticking:    util.NewSafeBool(),
		manualGate: rate.NewLimiter(rate.Every(ManualTriggerMinGap), 1),
		nextCh:     make(chan struct{}, 1),
		settingsCh: make(chan struct{}, 1),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Value())
}

// IsPaused reports whether rotation is paused.
func (s *Scheduler) IsPaused() bool {
	return s.State() == StatePaused
}

// CurrentImage returns the path of the most recently applied wallpaper.
func (s *Scheduler) CurrentImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Start transitions Stopped -> Running, applies a first wallpaper right
// away and begins the timer loop. Subsequent calls are no-ops.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		s.state.Set(int(StateRunning))
		s.mu.Lock()
		s.lastFolder = s.cfg.Settings().Folder
		s.mu.Unlock()
		go s.run()
	})
}

// Stop ends the rotation loop. An in-flight tick is given ShutdownTimeout
// to finish, then abandoned; wallpaper calls are fast so this only matters
// when an OS call wedges.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		select {
		case <-s.done:
		case <-time.After(ShutdownTimeout):
			log.Printf("Scheduler did not stop within %v, abandoning in-flight tick", ShutdownTimeout)
		}
		s.state.Set(int(StateStopped))
	})
}

// Pause suspends automatic rotation. Manual "next" still works while paused.
func (s *Scheduler) Pause() {
	if s.State() == StateRunning {
		s.state.Set(int(StatePaused))
		log.Print("Rotation paused")
	}
}

// Resume restarts automatic rotation after a pause.
func (s *Scheduler) Resume() {
	if s.State() == StatePaused {
		s.state.Set(int(StateRunning))
		log.Print("Rotation resumed")
	}
}

// TogglePause flips between Running and Paused and returns true when the
// scheduler is paused afterwards.
func (s *Scheduler) TogglePause() bool {
	if s.IsPaused() {
		s.Resume()
	} else {
		s.Pause()
	}
	return s.IsPaused()
}

// TriggerNext requests an immediate wallpaper change. Triggers are rate
// limited and a trigger arriving while a tick is in flight is dropped,
// not queued.
func (s *Scheduler) TriggerNext() {
	if s.ticking.Value() {
		return
	}
	if !s.manualGate.Allow() {
		return
	}
	select {
	case s.nextCh <- struct{}{}:
	default:
	}
}

// SettingsChanged tells the scheduler to re-read its settings: the timer is
// re-armed with the new interval and the rotation state resets if the
// folder changed. No wallpaper change happens until the next trigger.
func (s *Scheduler) SettingsChanged() {
	select {
	case s.settingsCh <- struct{}{}:
	default:
	}
}

// run is the single consumer goroutine behind all triggers.
func (s *Scheduler) run() {
	defer close(s.done)

	// First wallpaper immediately on start.
	s.tick()

	timer := time.NewTimer(s.nextWait())
	defer timer.Stop()

	rearm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.nextWait())
	}

	for {
		select {
		case <-timer.C:
			if s.State() == StateRunning {
				s.tick()
			}
			timer.Reset(s.nextWait())
		case <-s.nextCh:
			s.tick()
			rearm()
		case <-s.settingsCh:
			s.reloadSettings()
			rearm()
		case <-s.quit:
			return
		}
	}
}

// reloadSettings applies a settings change to the rotation state.
func (s *Scheduler) reloadSettings() {
	settings := s.cfg.Settings()
	s.mu.Lock()
	folderChanged := settings.Folder != s.lastFolder
	s.lastFolder = settings.Folder
	s.mu.Unlock()

	if folderChanged {
		s.picker.Reset()
		log.Printf("Image folder changed to %s, rotation state reset", settings.Folder)
	}
	s.picker.SetMode(settings.Mode)
}

// nextWait computes the duration until the next automatic tick from the
// current settings, so interval changes take effect without a restart.
func (s *Scheduler) nextWait() time.Duration {
	settings := s.cfg.Settings()
	if settings.RandomInterval {
		minWait := settings.RandomMinSeconds
		maxWait := settings.RandomMaxSeconds
		if maxWait < minWait {
			maxWait = minWait
		}
		return time.Duration(minWait+rand.Intn(maxWait-minWait+1)) * time.Second
	}
	return time.Duration(settings.IntervalSeconds) * time.Second
}

// tick runs one rotation cycle: list -> pick -> set -> browser sync.
// Every failure is surfaced and swallowed; nothing stops the scheduler.
// The in-flight flag is what makes TriggerNext drop mid-tick triggers.
func (s *Scheduler) tick() {
	s.ticking.Set(true)
	defer s.ticking.Set(false)

	if s.os.screensaverActive() {
		log.Debug("Screensaver active, skipping wallpaper change")
		return
	}

	settings := s.cfg.Settings()

	s.mu.Lock()
	if settings.Folder != s.lastFolder {
		s.lastFolder = settings.Folder
		s.picker.Reset()
	}
	s.mu.Unlock()
	s.picker.SetMode(settings.Mode)

	listing, err := ListImages(settings.Folder, settings.IncludeSubdirs)
	if err != nil {
		if errors.Is(err, ErrEmptyFolder) {
			log.Printf("No images found in %s, skipping this change", settings.Folder)
			s.notify(config.AppName, "No images found in "+settings.Folder)
		} else {
			log.Printf("Failed to list images: %v", err)
			s.notify(config.AppName, "Could not read the image folder")
		}
		return
	}

	path, err := s.picker.Pick(listing)
	if err != nil {
		// Only ErrEmptyFolder can happen here and the listing is non-empty.
		log.Printf("Picker failed unexpectedly: %v", err)
		return
	}

	if err := s.os.setWallpaper(path); err != nil {
		// Transient failure policy: the image stays in rotation.
		log.Printf("Failed to set wallpaper %s: %v", path, err)
		s.notify(config.AppName, "Could not set wallpaper: "+err.Error())
		return
	}

	s.mu.Lock()
	s.current = path
	s.mu.Unlock()
	log.Debugf("Wallpaper set to %s", path)

	if settings.BrowserSync {
		if err := s.browser.Sync(path); err != nil {
			// Best effort only, never fails the tick.
			log.Printf("Browser sync failed: %v", err)
		}
	}
}
