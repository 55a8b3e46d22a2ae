package worker

import (
	"context"

	"github.com/ytget/yt-picker/internal/model"
)

// Prober enumerates available formats for a URL.
type Prober interface {
	Probe(ctx context.Context, url string) (*model.ProbeResult, error)
}

// Downloader transfers one format into a destination directory, invoking the
// progress callback as the engine reports transfer updates.
type Downloader interface {
	Download(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) error
}

// Engine is the full surface the bridge needs from the downloading library.
type Engine interface {
	Prober
	Downloader
}
