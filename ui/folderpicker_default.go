//go:build !windows
// +build !windows

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/dixieflatline76/RandomBG/util/log"
)

// pickFolder opens the cross-platform fyne folder picker.
func pickFolder(parent fyne.Window, _ string, onPicked func(string)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder picker failed: %v", err)
			return
		}
		if uri == nil {
			return // cancelled
		}
		onPicked(uri.Path())
	}, parent)
}
