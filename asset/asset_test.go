package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIconReturnsEmbeddedResources(t *testing.T) {
	am := NewManager()

	for _, name := range []string{TrayIcon, TrayPausedIcon} {
		icon, err := am.GetIcon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, icon.Name())
		assert.NotEmpty(t, icon.Content())
	}
}

func TestGetIconRejectsUnknownNames(t *testing.T) {
	am := NewManager()

	_, err := am.GetIcon("non_existent.png")
	assert.Error(t, err)

	_, err = am.GetIcon("")
	assert.Error(t, err)
}

func TestGetImageDecodesIcon(t *testing.T) {
	am := NewManager()

	img, err := am.GetImage(TrayIcon)
	require.NoError(t, err)
	assert.NotZero(t, img.Bounds().Dx())

	_, err = am.GetImage("non_existent.png")
	assert.Error(t, err)
}
