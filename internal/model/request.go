package model

import (
	"errors"
	"strings"
)

// Validation errors surfaced before any job is dispatched.
var (
	ErrNoURL         = errors.New("no URL provided")
	ErrNoFormat      = errors.New("no format selected")
	ErrNoDestination = errors.New("no destination directory chosen")
)

// DownloadRequest carries everything the worker bridge needs for one download.
// It is built by the UI at dispatch time and consumed once; it is not persisted.
type DownloadRequest struct {
	URL      string // source video URL
	FormatID string // chosen format identifier from the most recent probe
	DestDir  string // destination directory for the downloaded file
	Ext      string // container extension of the chosen format, may be empty
}

// Validate reports the first missing field. A request that fails validation
// must never reach the worker bridge.
func (r *DownloadRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrNoURL
	}
	if strings.TrimSpace(r.FormatID) == "" {
		return ErrNoFormat
	}
	if strings.TrimSpace(r.DestDir) == "" {
		return ErrNoDestination
	}
	return nil
}
