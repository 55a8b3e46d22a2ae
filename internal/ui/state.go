package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-picker/internal/model"
)

// ControllerState is the explicit form state owned by the root UI: the URL
// text, the most recent probe result, the selected format, and the chosen
// destination. The worker bridge never mutates it; all updates happen on the
// interaction thread.
type ControllerState struct {
	URL        string
	Result     *model.ProbeResult // most recent probe; nil before the first
	SelectedID string
	DestDir    string
	Status     model.JobStatus
	Progress   model.ProgressEvent
}

// NewControllerState creates an idle state with the given destination default.
func NewControllerState(destDir string) *ControllerState {
	return &ControllerState{
		DestDir: destDir,
		Status:  model.JobStatusIdle,
	}
}

// ValidateURL checks that the URL text is a plausible http(s) URL.
func (s *ControllerState) ValidateURL(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return model.ErrNoURL
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// ApplyProbeResult replaces the displayed formats with a fresh probe result
// and clears the stale selection, keeping the invariant that a selection
// always references the most recent probe.
func (s *ControllerState) ApplyProbeResult(result *model.ProbeResult) {
	s.Result = result
	s.SelectedID = ""
}

// FormatCount returns the number of rows to display.
func (s *ControllerState) FormatCount() int {
	if s.Result == nil {
		return 0
	}
	return len(s.Result.Formats)
}

// FormatAt returns the descriptor for a list row.
func (s *ControllerState) FormatAt(index int) (model.FormatDescriptor, bool) {
	if s.Result == nil || index < 0 || index >= len(s.Result.Formats) {
		return model.FormatDescriptor{}, false
	}
	return s.Result.Formats[index], true
}

// SelectFormat records the chosen format. The identifier must reference a
// descriptor from the most recent probe.
func (s *ControllerState) SelectFormat(id string) error {
	if s.Result == nil {
		return model.ErrNoFormat
	}
	if _, ok := s.Result.FindFormat(id); !ok {
		return fmt.Errorf("unknown format: %s", id)
	}
	s.SelectedID = id
	return nil
}

// SelectedFormat returns the currently selected descriptor, if any.
func (s *ControllerState) SelectedFormat() (model.FormatDescriptor, bool) {
	if s.Result == nil || s.SelectedID == "" {
		return model.FormatDescriptor{}, false
	}
	return s.Result.FindFormat(s.SelectedID)
}

// CanDownload reports whether the download control should be enabled.
func (s *ControllerState) CanDownload() bool {
	return !s.Status.IsBusy() &&
		s.SelectedID != "" &&
		strings.TrimSpace(s.DestDir) != ""
}

// BuildRequest validates the form and builds the download request. It fails
// fast when no format is selected or the destination is unset; nothing is
// dispatched in that case.
func (s *ControllerState) BuildRequest() (model.DownloadRequest, error) {
	if s.Result == nil || s.SelectedID == "" {
		return model.DownloadRequest{}, model.ErrNoFormat
	}
	if strings.TrimSpace(s.DestDir) == "" {
		return model.DownloadRequest{}, model.ErrNoDestination
	}

	fd, ok := s.Result.FindFormat(s.SelectedID)
	if !ok {
		return model.DownloadRequest{}, model.ErrNoFormat
	}

	req := model.DownloadRequest{
		URL:      s.Result.SourceURL,
		FormatID: fd.ID,
		DestDir:  strings.TrimSpace(s.DestDir),
		Ext:      fd.Ext,
	}
	if err := req.Validate(); err != nil {
		return model.DownloadRequest{}, err
	}
	return req, nil
}
