package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/RandomBG/config"
)

func TestSettingsFromFormValid(t *testing.T) {
	ra := &App{}

	s, err := ra.settingsFromForm("/wallpapers", 1, "120", true, "30", "90", true, true, true)
	require.NoError(t, err)
	assert.Equal(t, "/wallpapers", s.Folder)
	assert.Equal(t, 120, s.IntervalSeconds)
	assert.Equal(t, config.ModeSequential, s.Mode)
	assert.True(t, s.RandomInterval)
	assert.Equal(t, 30, s.RandomMinSeconds)
	assert.Equal(t, 90, s.RandomMaxSeconds)
	assert.True(t, s.IncludeSubdirs)
	assert.True(t, s.Autostart)
	assert.True(t, s.BrowserSync)
}

func TestSettingsFromFormRejectsBadInput(t *testing.T) {
	ra := &App{}

	_, err := ra.settingsFromForm("", 0, "120", false, "30", "90", false, false, false)
	assert.Error(t, err, "empty folder")

	_, err = ra.settingsFromForm("/wallpapers", 0, "abc", false, "30", "90", false, false, false)
	assert.Error(t, err, "non-numeric interval")

	_, err = ra.settingsFromForm("/wallpapers", 0, "120", true, "", "90", false, false, false)
	assert.Error(t, err, "empty minimum while randomized")

	_, err = ra.settingsFromForm("/wallpapers", 0, "120", true, "90", "30", false, false, false)
	assert.Error(t, err, "maximum below minimum while randomized")
}

func TestSettingsFromFormIgnoresDisabledRandomFields(t *testing.T) {
	ra := &App{}

	// Cleared min/max fields must not block saving when the randomized
	// interval is off; the defaults take their place.
	s, err := ra.settingsFromForm("/wallpapers", 0, "120", false, "", "", false, false, false)
	require.NoError(t, err)
	assert.False(t, s.RandomInterval)
	assert.Equal(t, config.DefaultRandomMinSeconds, s.RandomMinSeconds)
	assert.Equal(t, config.DefaultRandomMaxSeconds, s.RandomMaxSeconds)

	// A valid leftover range is kept as typed.
	s, err = ra.settingsFromForm("/wallpapers", 0, "120", false, "30", "90", false, false, false)
	require.NoError(t, err)
	assert.Equal(t, 30, s.RandomMinSeconds)
	assert.Equal(t, 90, s.RandomMaxSeconds)
}
