package wallpaper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrEmptyFolder is returned when the configured folder contains no
// supported image files.
var ErrEmptyFolder = errors.New("no supported images in folder")

// isImageFile checks if a file has a supported image extension. The shared
// browser copy lives inside the image folder and must never rotate onto
// itself, so it is filtered out here.
func isImageFile(path string) bool {
	if filepath.Base(path) == SharedWallpaperName {
		return false
	}
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ListImages returns the absolute paths of all supported images directly
// inside folder, sorted by name. With recurse it walks subdirectories too.
// The listing is produced fresh on every call so folder edits take effect
// without a restart.
func ListImages(folder string, recurse bool) ([]string, error) {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("resolving folder %s: %w", folder, err)
	}

	var images []string
	if recurse {
		err = filepath.WalkDir(absFolder, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Unreadable subdirectories are skipped, not fatal.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && isImageFile(path) {
				images = append(images, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking folder %s: %w", absFolder, err)
		}
	} else {
		entries, readErr := os.ReadDir(absFolder)
		if readErr != nil {
			return nil, fmt.Errorf("reading folder %s: %w", absFolder, readErr)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if isImageFile(entry.Name()) {
				images = append(images, filepath.Join(absFolder, entry.Name()))
			}
		}
	}

	if len(images) == 0 {
		return nil, ErrEmptyFolder
	}

	sort.Strings(images)
	return images, nil
}
