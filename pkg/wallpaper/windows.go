//go:build windows
// +build windows

package wallpaper

import (
	"errors"
	"syscall"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// Windows API constants (defined manually)
const (
	SPISetDeskWallpaper      = 0x0014
	SPIGetScreenSaverRunning = 0x0072
	SPIFUpdateIniFile        = 0x01
	SPIFSendChange           = 0x02
)

// setWallpaper sets the wallpaper to the given image file path.
func (w *windowsOS) setWallpaper(imagePath string) error {
	// Convert the image path to UTF-16
	imagePathUTF16, err := syscall.UTF16PtrFromString(imagePath)
	if err != nil {
		return err
	}

	ret, _, err := systemParametersInfo.Call(
		uintptr(SPISetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(imagePathUTF16)),
		uintptr(SPIFUpdateIniFile|SPIFSendChange),
	)
	if ret == 0 {
		if err != nil {
			return err
		}
		return errors.New("SystemParametersInfoW rejected the image")
	}

	return nil
}

// screensaverActive reports whether the screensaver is currently running.
func (w *windowsOS) screensaverActive() bool {
	var running int32
	ret, _, _ := systemParametersInfo.Call(
		uintptr(SPIGetScreenSaverRunning),
		uintptr(0),
		uintptr(unsafe.Pointer(&running)),
		uintptr(0),
	)
	return ret != 0 && running != 0
}

// getOS returns a new instance of the windowsOS struct.
func getOS() OS {
	return &windowsOS{}
}
