package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not a real image"), 0644))
	return path
}

func TestListImagesFiltersByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "b.jpg")
	writeTestImage(t, tmpDir, "a.png")
	writeTestImage(t, tmpDir, "notes.txt")
	writeTestImage(t, tmpDir, "archive.zip")

	images, err := ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.png"),
		filepath.Join(tmpDir, "b.jpg"),
	}, images)
}

func TestListImagesExtensionCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "SHOUTY.PNG")
	writeTestImage(t, tmpDir, "Mixed.JpEg")

	images, err := ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestListImagesNoRecursionByDefault(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "top.png")
	subDir := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.Mkdir(subDir, 0755))
	writeTestImage(t, subDir, "deep.gif")

	images, err := ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "top.png")}, images)
}

func TestListImagesRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "top.png")
	subDir := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.Mkdir(subDir, 0755))
	writeTestImage(t, subDir, "deep.gif")

	images, err := ListImages(tmpDir, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "top.png"),
		filepath.Join(subDir, "deep.gif"),
	}, images)
}

func TestListImagesExcludesSharedBrowserCopy(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "a.png")
	writeTestImage(t, tmpDir, SharedWallpaperName)

	images, err := ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.png")}, images)
}

func TestListImagesEmptyFolder(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "readme.md")

	_, err := ListImages(tmpDir, false)
	assert.ErrorIs(t, err, ErrEmptyFolder)
}

func TestListImagesMissingFolder(t *testing.T) {
	_, err := ListImages(filepath.Join(t.TempDir(), "does-not-exist"), false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyFolder)
}

func TestListImagesReturnsFreshListing(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestImage(t, tmpDir, "a.png")

	images, err := ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	// A file added after the first listing shows up without any cache flush.
	writeTestImage(t, tmpDir, "b.png")
	images, err = ListImages(tmpDir, false)
	require.NoError(t, err)
	assert.Len(t, images, 2)
}
