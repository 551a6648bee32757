//go:build windows
// +build windows

package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/dixieflatline76/RandomBG/util/log"
)

// pickFolder opens the native Windows folder picker. The picker blocks its
// own goroutine; the result is delivered back on the fyne thread.
func pickFolder(parent fyne.Window, initial string, onPicked func(string)) {
	go func() {
		path, err := cfdutil.ShowPickFolderDialog(cfd.DialogConfig{
			Title:  "Select Wallpaper Folder",
			Role:   "RandomBGFolderPicker",
			Folder: initial,
		})
		if err != nil {
			if !errors.Is(err, cfd.ErrorCancelled) {
				log.Printf("Folder picker failed: %v", err)
			}
			return
		}
		fyne.Do(func() {
			onPicked(path)
		})
	}()
}
