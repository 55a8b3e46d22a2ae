package model

import (
	"fmt"
	"strings"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Display fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// FormatDescriptor describes one downloadable variant of a video as reported
// by a probe. Descriptors are read-only to the UI and are replaced wholesale
// when a new probe supersedes them.
type FormatDescriptor struct {
	ID         string // engine format identifier (itag)
	Resolution string // resolution label, e.g. "720p"; empty if unknown
	Ext        string // container extension, e.g. "mp4"
	Size       int64  // approximate file size in bytes, 0 if unknown
	FPS        int    // frame rate, 0 if unknown
}

// Label returns the display row for a format: "720p · mp4 · 50.0 MB · 30 fps".
// Unknown fields are rendered as a dash.
func (fd *FormatDescriptor) Label() string {
	parts := make([]string, 0, 4)

	if fd.Resolution != "" {
		parts = append(parts, fd.Resolution)
	} else {
		parts = append(parts, DashPlaceholder)
	}

	if fd.Ext != "" {
		parts = append(parts, fd.Ext)
	} else {
		parts = append(parts, DashPlaceholder)
	}

	if fd.Size > 0 {
		parts = append(parts, FormatFileSize(fd.Size))
	} else {
		parts = append(parts, "Unknown size")
	}

	if fd.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%d fps", fd.FPS))
	}

	return strings.Join(parts, MiddleDotSeparator)
}

// FormatFileSize formats a byte count as a human readable size (1024 based).
func FormatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
