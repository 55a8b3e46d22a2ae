package platform

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Filename constants
const (
	// MaxFilenameLength is the maximum allowed length for the filename base.
	MaxFilenameLength = 120
	// DefaultExt is the default extension used when none is provided.
	DefaultExt = "mp4"
	// DefaultName is the replacement name when the title is empty.
	DefaultName = "video"
)

var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]+`)

// SafeFilename builds a cross-platform safe filename from a video title and a
// container extension (without the dot). It mirrors the naming convention the
// downloading engine applies when handed a destination directory, so the
// result can be used to predict the output path before a download starts.
func SafeFilename(title, ext string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = DefaultName
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Clean(name + "." + ext)
}

// PredictOutputPath joins the destination directory with the safe filename
// derived from a probed title and chosen extension.
func PredictOutputPath(destDir, title, ext string) string {
	return filepath.Join(destDir, SafeFilename(title, ext))
}

// FileExists reports whether the path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
