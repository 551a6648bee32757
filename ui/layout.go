package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies the horizontal alignment of a split row.
type Alignment int

const (
	alignLeft    Alignment = iota
	alignOpposed           // first widget left, second widget right
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment
	Opposed Alignment
}{
	Left:    alignLeft,
	Opposed: alignOpposed,
}

// FirstWidgetProportion is how much of the row the first widget takes.
type FirstWidgetProportion int

const (
	oneThird FirstWidgetProportion = iota // 1/3 - 2/3
	oneHalf                               // 1/2 - 1/2
	twoThirds                             // 2/3 - 1/3
)

// SplitProportion is a namespace for the FirstWidgetProportion constants.
var SplitProportion = struct {
	OneThird  FirstWidgetProportion
	OneHalf   FirstWidgetProportion
	TwoThirds FirstWidgetProportion
}{
	OneThird:  oneThird,
	OneHalf:   oneHalf,
	TwoThirds: twoThirds,
}

// splitLayout places two widgets side by side at a fixed proportion, used
// for the label/control rows in the settings window.
type splitLayout struct {
	widget1    fyne.CanvasObject
	widget2    fyne.CanvasObject
	proportion FirstWidgetProportion
	alignment  Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1 := s.widget1.MinSize()
	w2 := s.widget2.MinSize()
	return fyne.NewSize(w1.Width+w2.Width, fyne.Max(w1.Height, w2.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	var widget1Width float32
	switch s.proportion {
	case oneThird:
		widget1Width = containerSize.Width / 3
	case oneHalf:
		widget1Width = containerSize.Width / 2
	case twoThirds:
		widget1Width = containerSize.Width * 2 / 3
	}
	widget2Width := containerSize.Width - widget1Width

	s.widget1.Resize(fyne.NewSize(widget1Width, s.widget1.MinSize().Height))
	s.widget2.Resize(fyne.NewSize(widget2Width, s.widget2.MinSize().Height))

	var widget2X float32
	switch s.alignment {
	case alignLeft:
		widget2X = widget1Width
	case alignOpposed:
		widget2X = containerSize.Width - s.widget2.MinSize().Width
		s.widget2.Resize(s.widget2.MinSize())
	}

	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget2X, 0))
}

// NewSplitRowWithAlignment creates a split row with the given alignment.
func NewSplitRowWithAlignment(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion, alignment Alignment) *fyne.Container {
	l := &splitLayout{
		widget1:    widget1,
		widget2:    widget2,
		proportion: proportion,
		alignment:  alignment,
	}
	return container.New(l, widget1, widget2)
}

// NewSplitRow creates a split row with default (left) alignment.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	return NewSplitRowWithAlignment(widget1, widget2, proportion, alignLeft)
}
