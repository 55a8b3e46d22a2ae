package model

import "fmt"

// ProgressEvent is one progress notification for a running download. Events
// are ephemeral; the UI keeps only the latest value.
type ProgressEvent struct {
	Percent float64 // 0.0 to 100.0
	Speed   string  // human readable transfer rate, e.g. "1.2 MB/s"
}

// FormatSpeed formats a transfer rate in bytes per second for display.
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return DashPlaceholder
	}
	return fmt.Sprintf("%s/s", FormatFileSize(int64(bytesPerSecond)))
}
