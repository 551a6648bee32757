package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mod/semver"
)

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", normalizeVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", normalizeVersion("v1.2.3"))
}

func TestVersionComparison(t *testing.T) {
	// Sanity checks for the comparison the update checker relies on.
	assert.Equal(t, 1, semver.Compare(normalizeVersion("1.1.0"), normalizeVersion("1.0.9")))
	assert.Equal(t, 0, semver.Compare(normalizeVersion("2.0.0"), normalizeVersion("v2.0.0")))
	assert.Equal(t, -1, semver.Compare(normalizeVersion("0.9.0"), normalizeVersion("1.0.0")))
}
