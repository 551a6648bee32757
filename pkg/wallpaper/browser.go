package wallpaper

import (
	"fmt"
	_ "image/gif" // Register GIF decoder for the shared copy conversion
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	_ "golang.org/x/image/bmp" // Register BMP decoder for the shared copy conversion
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/RandomBG/util/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BrowserSync mirrors the current wallpaper for browser new-tab pages.
// It writes a stable PNG copy plus a metadata sidecar next to the image
// (the companion extension reads both), and on Windows rewrites the
// Chromium preferences of Edge and Chrome profiles. Everything here is
// best effort; a failed sync never fails a tick.
type BrowserSync struct {
	now func() time.Time
}

// SyncMetadata is the sidecar the extension companion polls. The uuid and
// timestamp change on every sync so the new-tab page can bust its cache.
type SyncMetadata struct {
	Updated     string `json:"updated"`
	UpdatedUnix int64  `json:"updated_unix"`
	ID          string `json:"id"`
	Image       string `json:"image"`
}

// NewBrowserSync creates a BrowserSync.
func NewBrowserSync() *BrowserSync {
	return &BrowserSync{now: time.Now}
}

// Sync mirrors the image at imagePath for browsers. The shared copy and
// metadata sidecar land in the image's directory under fixed names.
func (b *BrowserSync) Sync(imagePath string) error {
	shared, err := b.writeSharedCopy(imagePath)
	if err != nil {
		return fmt.Errorf("writing shared wallpaper copy: %w", err)
	}

	if err := b.writeMetadata(shared); err != nil {
		return fmt.Errorf("writing sync metadata: %w", err)
	}

	if runtime.GOOS == "windows" {
		return b.syncChromiumProfiles(shared)
	}
	return nil
}

// writeSharedCopy converts the image to PNG under a stable name in the
// same directory. Falls back to a raw byte copy when decoding fails, so
// an odd file still reaches the browsers in its original format.
func (b *BrowserSync) writeSharedCopy(imagePath string) (string, error) {
	target := filepath.Join(filepath.Dir(imagePath), SharedWallpaperName)

	img, err := imaging.Open(imagePath)
	if err == nil {
		if err = imaging.Save(img, target); err == nil {
			return target, nil
		}
		log.Printf("PNG conversion of %s failed (%v), falling back to raw copy", imagePath, err)
	} else {
		log.Printf("Could not decode %s (%v), falling back to raw copy", imagePath, err)
	}

	if err := copyFile(imagePath, target); err != nil {
		return "", err
	}
	return target, nil
}

// writeMetadata writes the cache-busting sidecar next to the shared copy.
func (b *BrowserSync) writeMetadata(sharedPath string) error {
	now := b.now().UTC()
	meta := SyncMetadata{
		Updated:     now.Format(time.RFC3339),
		UpdatedUnix: now.Unix(),
		ID:          uuid.NewString(),
		Image:       filepath.Base(sharedPath),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(filepath.Dir(sharedPath), SharedMetadataName), data, 0644)
}

// syncChromiumProfiles updates the new-tab background of every Edge
// profile and the default Chrome profile. Profiles are independent, so
// they are written in parallel.
func (b *BrowserSync) syncChromiumProfiles(imagePath string) error {
	var g errgroup.Group
	for _, prefs := range chromiumPrefFiles() {
		prefs := prefs
		g.Go(func() error {
			return updateChromiumPrefs(prefs, imagePath)
		})
	}
	return g.Wait()
}

// chromiumPrefFiles returns the Preferences files of all user-facing
// Edge profiles plus the default Chrome profile, when present.
func chromiumPrefFiles() []string {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		localAppData = filepath.Join(home, "AppData", "Local")
	}

	var files []string
	edgeUserData := filepath.Join(localAppData, "Microsoft", "Edge", "User Data")
	matches, _ := filepath.Glob(filepath.Join(edgeUserData, "*", "Preferences"))
	files = append(files, matches...)

	chromePrefs := filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default", "Preferences")
	if _, err := os.Stat(chromePrefs); err == nil {
		files = append(files, chromePrefs)
	}
	return files
}

// updateChromiumPrefs rewrites one Preferences file so the browser uses
// the given image as custom new-tab background. The image is copied into
// the profile first to avoid permission and cross-drive surprises.
func updateChromiumPrefs(prefsPath, imagePath string) error {
	data, err := os.ReadFile(prefsPath)
	if err != nil {
		// Profile without preferences yet, nothing to update.
		return nil
	}

	var prefs map[string]interface{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("parsing %s: %w", prefsPath, err)
	}

	effective := imagePath
	copied := filepath.Join(filepath.Dir(prefsPath), SharedWallpaperName)
	if err := copyFile(imagePath, copied); err == nil {
		effective = copied
	}

	imageURI := "file:///" + filepath.ToSlash(effective)

	background, _ := prefs["ntp_custom_background_dict"].(map[string]interface{})
	if background == nil {
		background = make(map[string]interface{})
	}
	background["background_url"] = ""
	background["collection_id"] = ""
	background["custom_background_local_to_drive"] = true
	background["local_background_image_file_url"] = imageURI
	background["local_background_image_path"] = effective
	background["local_background_image_id"] = ""

	prefs["ntp_custom_background_dict"] = background
	prefs["ntp_custom_background_enabled"] = true
	prefs["ntp_custom_background_set_by_admin"] = false
	prefs["ntp_custom_background_disabled_by_policy"] = false
	prefs["ntp_show_background_image"] = true
	prefs["ntp_background_source"] = 1 // 1 = custom background
	prefs["ntp_custom_background_local_to_device"] = true

	out, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(prefsPath, out, 0644)
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
