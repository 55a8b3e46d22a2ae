package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-picker/internal/model"
)

// FormatRow is a compact list row showing one probed format: resolution on
// the left, container/size/frame-rate details on the right.
type FormatRow struct {
	widget.BaseWidget

	descriptor model.FormatDescriptor

	resolutionLabel *widget.Label
	detailsLabel    *widget.Label
}

// NewFormatRow creates a row for a format descriptor.
func NewFormatRow(fd model.FormatDescriptor) *FormatRow {
	fr := &FormatRow{descriptor: fd}
	fr.ExtendBaseWidget(fr)

	fr.resolutionLabel = widget.NewLabel("")
	fr.resolutionLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.resolutionLabel.Alignment = fyne.TextAlignLeading

	fr.detailsLabel = widget.NewLabel("")
	fr.detailsLabel.Alignment = fyne.TextAlignTrailing
	fr.detailsLabel.TextStyle = fyne.TextStyle{Monospace: true}

	fr.updateFromDescriptor()
	return fr
}

// UpdateDescriptor updates the row with new format data.
func (fr *FormatRow) UpdateDescriptor(fd model.FormatDescriptor) {
	fr.descriptor = fd
	fr.updateFromDescriptor()
	fr.Refresh()
}

// updateFromDescriptor refreshes labels from the descriptor.
func (fr *FormatRow) updateFromDescriptor() {
	fd := fr.descriptor

	resolution := fd.Resolution
	if resolution == "" {
		resolution = model.DashPlaceholder
	}
	fr.resolutionLabel.SetText(resolution)

	ext := fd.Ext
	if ext == "" {
		ext = model.DashPlaceholder
	}
	size := "Unknown size"
	if fd.Size > 0 {
		size = model.FormatFileSize(fd.Size)
	}
	details := ext + model.MiddleDotSeparator + size
	if fd.FPS > 0 {
		details += model.MiddleDotSeparator + fmt.Sprintf("%d fps", fd.FPS)
	}
	fr.detailsLabel.SetText(details)
}

// CreateRenderer creates the widget renderer.
func (fr *FormatRow) CreateRenderer() fyne.WidgetRenderer {
	layout := container.NewBorder(nil, nil, fr.resolutionLabel, nil, fr.detailsLabel)
	return widget.NewSimpleRenderer(layout)
}

// MinSize keeps rows wide enough for the details column.
func (fr *FormatRow) MinSize() fyne.Size {
	min := fr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowDefaultHeight {
		min.Height = RowDefaultHeight
	}
	return min
}
