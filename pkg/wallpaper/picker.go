package wallpaper

import (
	"math/rand"

	"github.com/dixieflatline76/RandomBG/config"
)

// Picker chooses the next image from a listing. It owns the rotation
// state: the sequential index and the last pick used to avoid immediate
// repeats in random mode. The state is ephemeral and reset whenever the
// configured folder changes.
type Picker struct {
	mode  string
	index int
	last  string
}

// NewPicker creates a Picker for the given selection mode.
func NewPicker(mode string) *Picker {
	return &Picker{mode: mode}
}

// SetMode switches the selection mode. Rotation state carries over so a
// mode flip mid-cycle keeps its place in the listing.
func (p *Picker) SetMode(mode string) {
	p.mode = mode
}

// Reset clears the rotation state. Called when the image folder changes.
func (p *Picker) Reset() {
	p.index = 0
	p.last = ""
}

// Last returns the most recently picked path, or "" before the first pick.
func (p *Picker) Last() string {
	return p.last
}

// Pick returns exactly one path from the listing. An empty listing fails
// with ErrEmptyFolder and leaves the rotation state unchanged.
func (p *Picker) Pick(listing []string) (string, error) {
	if len(listing) == 0 {
		return "", ErrEmptyFolder
	}

	var picked string
	if p.mode == config.ModeSequential {
		// The index must stay valid for the current listing; wrap it
		// if files were deleted since the last pick.
		p.index %= len(listing)
		picked = listing[p.index]
		p.index = (p.index + 1) % len(listing)
	} else {
		picked = listing[rand.Intn(len(listing))]
		// Resample to avoid an immediate repeat, bounded so a pathological
		// RNG run cannot loop forever. With a single image a repeat is
		// unavoidable and accepted.
		for attempt := 0; picked == p.last && len(listing) > 1 && attempt < MaxRandomRetry; attempt++ {
			picked = listing[rand.Intn(len(listing))]
		}
	}

	p.last = picked
	return picked, nil
}
