package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/RandomBG/config"
)

func TestSequentialVisitsEveryPathOnceBeforeRepeat(t *testing.T) {
	listing := []string{"a.png", "b.png", "c.png", "d.png"}
	p := NewPicker(config.ModeSequential)

	seen := make(map[string]bool)
	for i := 0; i < len(listing); i++ {
		picked, err := p.Pick(listing)
		require.NoError(t, err)
		assert.False(t, seen[picked], "repeat before full cycle: %s", picked)
		seen[picked] = true
	}
	assert.Len(t, seen, len(listing))

	// The cycle is stable: the next pass visits the same order again.
	first, err := p.Pick(listing)
	require.NoError(t, err)
	assert.Equal(t, "a.png", first)
}

func TestSequentialScenario(t *testing.T) {
	// Three files, three ticks a b c, the fourth wraps to a.
	listing := []string{"a.png", "b.png", "c.png"}
	p := NewPicker(config.ModeSequential)

	var got []string
	for i := 0; i < 4; i++ {
		picked, err := p.Pick(listing)
		require.NoError(t, err)
		got = append(got, picked)
	}
	assert.Equal(t, []string{"a.png", "b.png", "c.png", "a.png"}, got)
}

func TestSequentialIndexSurvivesShrinkingListing(t *testing.T) {
	p := NewPicker(config.ModeSequential)

	listing := []string{"a.png", "b.png", "c.png"}
	_, err := p.Pick(listing)
	require.NoError(t, err)
	_, err = p.Pick(listing)
	require.NoError(t, err)

	// Index now points at c.png; shrink the listing underneath it.
	shrunk := []string{"a.png", "b.png"}
	picked, err := p.Pick(shrunk)
	require.NoError(t, err)
	assert.Contains(t, shrunk, picked)
}

func TestRandomNeverRepeatsConsecutively(t *testing.T) {
	// A ten-entry listing keeps the odds of exhausting all resample
	// attempts below 1e-10 per pick, so the strict assertion is stable.
	listing := make([]string, 10)
	for i := range listing {
		listing[i] = string(rune('a'+i)) + ".png"
	}
	p := NewPicker(config.ModeRandom)

	prev := ""
	for i := 0; i < 1000; i++ {
		picked, err := p.Pick(listing)
		require.NoError(t, err)
		assert.NotEqual(t, prev, picked, "consecutive repeat on pick %d", i)
		prev = picked
	}
}

func TestRandomSingleFileAlwaysSucceeds(t *testing.T) {
	listing := []string{"only.png"}
	p := NewPicker(config.ModeRandom)

	for i := 0; i < 50; i++ {
		picked, err := p.Pick(listing)
		require.NoError(t, err)
		assert.Equal(t, "only.png", picked)
	}
}

func TestEmptyListingFailsAndLeavesStateUnchanged(t *testing.T) {
	p := NewPicker(config.ModeSequential)

	listing := []string{"a.png", "b.png"}
	_, err := p.Pick(listing)
	require.NoError(t, err)

	indexBefore := p.index
	lastBefore := p.Last()

	_, err = p.Pick(nil)
	assert.ErrorIs(t, err, ErrEmptyFolder)
	assert.Equal(t, indexBefore, p.index)
	assert.Equal(t, lastBefore, p.Last())
}

func TestResetClearsRotationState(t *testing.T) {
	p := NewPicker(config.ModeSequential)
	listing := []string{"a.png", "b.png"}

	_, err := p.Pick(listing)
	require.NoError(t, err)

	p.Reset()
	picked, err := p.Pick(listing)
	require.NoError(t, err)
	assert.Equal(t, "a.png", picked)
	assert.Equal(t, "a.png", p.Last())
}

func TestModeSwitchKeepsPlace(t *testing.T) {
	p := NewPicker(config.ModeRandom)
	listing := []string{"a.png", "b.png", "c.png"}

	_, err := p.Pick(listing)
	require.NoError(t, err)

	p.SetMode(config.ModeSequential)
	picked, err := p.Pick(listing)
	require.NoError(t, err)
	assert.Contains(t, listing, picked)
}
