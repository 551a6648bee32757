package wallpaper

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRealPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestSyncWritesSharedCopyAndMetadata(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeRealPNG(t, tmpDir, "source.png")

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := NewBrowserSync()
	b.now = func() time.Time { return fixed }

	require.NoError(t, b.Sync(src))

	shared := filepath.Join(tmpDir, SharedWallpaperName)
	_, err := os.Stat(shared)
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, SharedMetadataName))
	require.NoError(t, err)

	var meta SyncMetadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, fixed.Format(time.RFC3339), meta.Updated)
	assert.Equal(t, fixed.Unix(), meta.UpdatedUnix)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, SharedWallpaperName, meta.Image)
}

func TestSyncMetadataChangesEveryRun(t *testing.T) {
	tmpDir := t.TempDir()
	src := writeRealPNG(t, tmpDir, "source.png")

	b := NewBrowserSync()
	require.NoError(t, b.Sync(src))
	first, err := os.ReadFile(filepath.Join(tmpDir, SharedMetadataName))
	require.NoError(t, err)

	require.NoError(t, b.Sync(src))
	second, err := os.ReadFile(filepath.Join(tmpDir, SharedMetadataName))
	require.NoError(t, err)

	var m1, m2 SyncMetadata
	require.NoError(t, json.Unmarshal(first, &m1))
	require.NoError(t, json.Unmarshal(second, &m2))
	// The uuid busts caches even when two syncs land in the same second.
	assert.NotEqual(t, m1.ID, m2.ID)
}

func TestWriteSharedCopyFallsBackToRawCopy(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "broken.png")
	require.NoError(t, os.WriteFile(src, []byte("definitely not a png"), 0644))

	b := NewBrowserSync()
	shared, err := b.writeSharedCopy(src)
	require.NoError(t, err)

	got, err := os.ReadFile(shared)
	require.NoError(t, err)
	assert.Equal(t, []byte("definitely not a png"), got)
}

func TestUpdateChromiumPrefs(t *testing.T) {
	tmpDir := t.TempDir()
	img := writeRealPNG(t, tmpDir, "wall.png")

	profileDir := filepath.Join(tmpDir, "Default")
	require.NoError(t, os.Mkdir(profileDir, 0755))
	prefsPath := filepath.Join(profileDir, "Preferences")
	require.NoError(t, os.WriteFile(prefsPath, []byte(`{"existing_key": "kept"}`), 0644))

	require.NoError(t, updateChromiumPrefs(prefsPath, img))

	data, err := os.ReadFile(prefsPath)
	require.NoError(t, err)
	var prefs map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &prefs))

	assert.Equal(t, "kept", prefs["existing_key"])
	assert.Equal(t, true, prefs["ntp_custom_background_enabled"])
	assert.Equal(t, true, prefs["ntp_show_background_image"])

	background, ok := prefs["ntp_custom_background_dict"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, background["local_background_image_file_url"])

	// The image was copied into the profile for the browser to read.
	_, err = os.Stat(filepath.Join(profileDir, SharedWallpaperName))
	assert.NoError(t, err)
}

func TestUpdateChromiumPrefsMissingFileIsNoop(t *testing.T) {
	assert.NoError(t, updateChromiumPrefs(filepath.Join(t.TempDir(), "Preferences"), "whatever.png"))
}
