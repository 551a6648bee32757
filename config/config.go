package config

// The release logger reads its destination from this package, so config
// deliberately sticks to the stdlib logger to stay import-cycle free.
import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Package config persists the user settings for the RandomBG rotation service.

// Settings holds all user-configurable state. Unknown fields in the
// persisted file are ignored on load so newer files keep working with
// older builds.
type Settings struct {
	Folder           string `json:"folder"`
	IntervalSeconds  int    `json:"interval_seconds"`
	Mode             string `json:"mode"`
	Autostart        bool   `json:"autostart"`
	IncludeSubdirs   bool   `json:"include_subdirs"`
	RandomInterval   bool   `json:"random_interval"`
	RandomMinSeconds int    `json:"random_min_seconds"`
	RandomMaxSeconds int    `json:"random_max_seconds"`
	BrowserSync      bool   `json:"browser_sync"`
}

// Config wraps Settings with a lock so the tray UI and the scheduler can
// share one instance. All mutation goes through Update followed by Save.
type Config struct {
	mu       sync.RWMutex
	settings Settings
	filename string
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton instance of Config.
func GetConfig() *Config {
	once.Do(func() {
		instance = NewConfig(GetFilename())
	})
	return instance
}

// NewConfig loads a Config backed by the given file. A missing or corrupt
// file is not an error; the documented defaults are used instead.
func NewConfig(filename string) *Config {
	c := &Config{filename: filename}
	if err := c.loadFromFile(filename); err != nil {
		log.Printf("No usable config at %s (%v), using defaults", filename, err)
		c.settings = DefaultSettings()
	}
	return c
}

// GetFilename returns the path to the user's config file.
func GetFilename() string {
	return filepath.Join(GetPath(), ConfigFileName)
}

// GetPath returns the path to the user's config directory.
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// DefaultSettings returns the documented default settings.
func DefaultSettings() Settings {
	folder, err := os.UserHomeDir()
	if err != nil {
		folder = "."
	}
	return Settings{
		Folder:           folder,
		IntervalSeconds:  DefaultIntervalSeconds,
		Mode:             DefaultMode,
		Autostart:        false,
		RandomMinSeconds: DefaultRandomMinSeconds,
		RandomMaxSeconds: DefaultRandomMaxSeconds,
	}
}

// loadFromFile loads settings from the specified file on top of the defaults,
// so fields missing from the file keep their default values.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	c.settings = normalize(s)
	return nil
}

// normalize clamps out-of-range values back to usable ones.
func normalize(s Settings) Settings {
	if s.IntervalSeconds < MinIntervalSeconds {
		s.IntervalSeconds = DefaultIntervalSeconds
	}
	if s.Mode != ModeRandom && s.Mode != ModeSequential {
		s.Mode = DefaultMode
	}
	if s.RandomMinSeconds < MinIntervalSeconds {
		s.RandomMinSeconds = DefaultRandomMinSeconds
	}
	if s.RandomMaxSeconds < s.RandomMinSeconds {
		s.RandomMaxSeconds = s.RandomMinSeconds
	}
	return s
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Update replaces the current settings and persists them. The returned
// error only ever concerns persistence; the in-memory settings are always
// updated.
func (c *Config) Update(s Settings) error {
	c.mu.Lock()
	c.settings = normalize(s)
	c.mu.Unlock()
	return c.Save()
}

// Save writes the current settings to the config file atomically: the full
// object goes to a temp file in the same directory which is then renamed
// over the old one, so a crash mid-write cannot corrupt the persisted file.
func (c *Config) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.settings, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filename)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ConfigFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, c.filename); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
