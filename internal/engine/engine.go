package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-picker/internal/model"
)

// Timeout constants
const (
	DefaultProbeTimeout = 60 * time.Second
)

// Format selector template understood by the library.
const (
	ItagSelectorTemplate = "itag=%s"
)

// Client wraps the ytdlp library behind the two calls the application needs:
// a format probe and a download with progress reporting.
type Client struct {
	probeTimeout time.Duration
}

// NewClient creates a new engine client.
func NewClient() *Client {
	return &Client{
		probeTimeout: DefaultProbeTimeout,
	}
}

// SetProbeTimeout sets the timeout for probe operations.
func (c *Client) SetProbeTimeout(timeout time.Duration) {
	c.probeTimeout = timeout
}

// Probe queries the available formats for a URL without downloading media.
// Only combined video+audio formats are returned, ordered best-first.
func (c *Client) Probe(ctx context.Context, url string) (*model.ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	log.Printf("Probing formats for URL: %s", url)

	_, info, err := ytdlp.New().ResolveURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("probe failed: %w", err)
	}

	descriptors := DescriptorsFromFormats(info.Formats)
	log.Printf("Probe returned %d combined formats (of %d total) for %q",
		len(descriptors), len(info.Formats), info.Title)

	return &model.ProbeResult{
		SourceURL: url,
		Title:     info.Title,
		Formats:   descriptors,
	}, nil
}

// Download transfers the requested format into the destination directory,
// forwarding the library's native progress callback as ProgressEvents. The
// output filename convention is the library's own.
func (c *Client) Download(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) error {
	if err := req.Validate(); err != nil {
		return err
	}

	started := time.Now()
	dl := ytdlp.New().
		WithFormat(fmt.Sprintf(ItagSelectorTemplate, req.FormatID), req.Ext).
		WithOutputPath(req.DestDir).
		WithProgress(func(p ytdlp.Progress) {
			if onProgress == nil {
				return
			}
			event := model.ProgressEvent{
				Percent: p.Percent,
				Speed:   downloadSpeed(p.DownloadedSize, started),
			}
			onProgress(event)
		})

	if _, err := dl.Download(ctx, req.URL); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}

// downloadSpeed derives a human readable average transfer rate.
func downloadSpeed(downloadedBytes int64, started time.Time) string {
	elapsed := time.Since(started).Seconds()
	if elapsed <= 0 || downloadedBytes <= 0 {
		return model.DashPlaceholder
	}
	return model.FormatSpeed(float64(downloadedBytes) / elapsed)
}

// DescriptorsFromFormats maps library formats to domain descriptors, keeping
// only combined video+audio variants, ordered by resolution height descending.
func DescriptorsFromFormats(formats []ytdlp.Format) []model.FormatDescriptor {
	descriptors := make([]model.FormatDescriptor, 0, len(formats))
	for _, f := range formats {
		if !isCombinedFormat(f.MimeType) {
			continue
		}
		descriptors = append(descriptors, model.FormatDescriptor{
			ID:         strconv.Itoa(f.Itag),
			Resolution: resolutionLabel(f.Quality),
			Ext:        extFromMime(f.MimeType),
			Size:       f.Size,
		})
	}

	sort.SliceStable(descriptors, func(i, j int) bool {
		return parseHeight(descriptors[i].Resolution) > parseHeight(descriptors[j].Resolution)
	})

	return descriptors
}
