package wallpaper

import (
	"errors"
	"sync"
	"time"
)

// fakeOS records wallpaper calls and lets tests inject failures, an
// active screensaver and a slow OS call.
type fakeOS struct {
	mu          sync.Mutex
	applied     []string
	setErr      error
	setDelay    time.Duration
	saverActive bool
}

func (f *fakeOS) setWallpaper(path string) error {
	f.mu.Lock()
	delay := f.setDelay
	err := f.setErr
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.applied = append(f.applied, path)
	f.mu.Unlock()
	return nil
}

func (f *fakeOS) screensaverActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saverActive
}

func (f *fakeOS) appliedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.applied...)
}

func (f *fakeOS) failWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setErr = err
}

func (f *fakeOS) slowDown(delay time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setDelay = delay
}

func (f *fakeOS) setSaver(active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saverActive = active
}

var errRejected = errors.New("os rejected the image")
