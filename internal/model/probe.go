package model

// ProbeResult is the outcome of one successful format probe. It is replaced
// wholesale by the next probe; a DownloadRequest must reference a descriptor
// from the most recent result.
type ProbeResult struct {
	SourceURL string
	Title     string
	Formats   []FormatDescriptor
}

// FindFormat returns the descriptor with the given ID, if present.
func (pr *ProbeResult) FindFormat(id string) (FormatDescriptor, bool) {
	for _, fd := range pr.Formats {
		if fd.ID == id {
			return fd, true
		}
	}
	return FormatDescriptor{}, false
}
