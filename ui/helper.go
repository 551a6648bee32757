package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

func styledLabel(text string, importance widget.Importance, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance
	label.TextStyle = style
	return label
}

// createSectionTitleLabel makes the bold heading that opens a settings section.
func createSectionTitleLabel(text string) *widget.Label {
	return styledLabel(text, widget.HighImportance, fyne.TextStyle{Bold: true})
}

// createSettingTitleLabel makes the bold name label next to an input widget.
func createSettingTitleLabel(text string) *widget.Label {
	return styledLabel(text, widget.MediumImportance, fyne.TextStyle{Bold: true})
}

// createSettingDescriptionLabel makes the muted italic help text under a setting.
func createSettingDescriptionLabel(text string) *widget.Label {
	return styledLabel(text, widget.LowImportance, fyne.TextStyle{Italic: true})
}
