package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	heightRe = regexp.MustCompile(`([0-9]{3,4})p`)
	digitsRe = regexp.MustCompile(`([0-9]{3,4})`)
)

// Audio codec name prefixes seen in YouTube codecs lists.
var audioCodecPrefixes = []string{"mp4a", "opus", "vorbis", "ac-3", "ec-3"}

// isCombinedFormat reports whether a MIME type describes a progressive stream
// carrying both video and audio. Adaptive (video-only or audio-only) variants
// are rejected, mirroring the vcodec/acodec filter of classic yt-dlp probes.
func isCombinedFormat(mimeType string) bool {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	if !strings.HasPrefix(mime, "video/") {
		return false
	}
	for _, codec := range codecsList(mime) {
		for _, prefix := range audioCodecPrefixes {
			if strings.HasPrefix(codec, prefix) {
				return true
			}
		}
	}
	return false
}

// codecsList extracts the codec names from a MIME type's codecs parameter.
func codecsList(mimeType string) []string {
	idx := strings.Index(mimeType, "codecs=")
	if idx < 0 {
		return nil
	}
	raw := strings.Trim(mimeType[idx+len("codecs="):], `"' `)
	raw = strings.Trim(raw, `"`)
	parts := strings.Split(raw, ",")
	codecs := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			codecs = append(codecs, c)
		}
	}
	return codecs
}

// extFromMime returns the MIME subtype as the container extension (mp4, webm).
func extFromMime(mimeType string) string {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	parts := strings.Split(mime, "/")
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// resolutionLabel normalizes a quality string to a "720p" style label.
// Labels without a recognizable height are passed through unchanged.
func resolutionLabel(quality string) string {
	q := strings.TrimSpace(quality)
	if q == "" {
		return ""
	}
	if m := heightRe.FindStringSubmatch(q); len(m) >= 2 {
		return m[1] + "p"
	}
	// "hd720", "large" style labels; keep digits when present
	if m := digitsRe.FindStringSubmatch(q); len(m) >= 2 {
		return m[1] + "p"
	}
	return q
}

// parseHeight returns the numeric height of a resolution label, 0 if unknown.
func parseHeight(label string) int {
	m := heightRe.FindStringSubmatch(label)
	if len(m) >= 2 {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}
	return 0
}
