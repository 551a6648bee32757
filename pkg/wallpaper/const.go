package wallpaper

import "time"

// Internal constants
const (
	// MaxRandomRetry caps resampling in random mode before a repeat
	// of the previous image is accepted.
	MaxRandomRetry = 10

	// ShutdownTimeout bounds how long Stop waits for an in-flight
	// tick before abandoning it.
	ShutdownTimeout = 2 * time.Second

	// ManualTriggerMinGap is the minimum spacing enforced between
	// manual "next wallpaper" triggers.
	ManualTriggerMinGap = 200 * time.Millisecond

	// SharedWallpaperName is the stable file name of the copy written
	// next to the image folder for browsers and the extension companion.
	SharedWallpaperName = "randombg_wallpaper.png"

	// SharedMetadataName is the JSON sidecar holding the cache-busting
	// metadata for the extension companion.
	SharedMetadataName = "randombg_meta.json"
)

// supportedExtensions is the allow-list for the image source. Keys are
// lower-case extensions including the dot.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}
