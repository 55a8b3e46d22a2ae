package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-picker/internal/model"
)

// Retry constants
const (
	DefaultRetryBackoff = 2 * time.Second
	MaxRetryAttempts    = 10
)

// Job ID prefixes
const (
	ProbeJobPrefix    = "probe-"
	DownloadJobPrefix = "download-"
)

// ErrBusy is returned when a job is dispatched while another is in flight.
// Submissions are rejected, never queued.
var ErrBusy = errors.New("a job is already in flight")

// Callbacks receive job outcomes. They are invoked from the worker goroutine;
// UI code must marshal back to the interaction thread itself. The job slot is
// always cleared before a terminal callback fires, so handlers may resubmit.
type Callbacks struct {
	OnProbeResult func(result *model.ProbeResult)
	OnProgress    func(event model.ProgressEvent)
	OnComplete    func()
	OnError       func(message string)
}

// Bridge owns the single worker job slot. At most one probe or download runs
// at any instant; a second dispatch fails with ErrBusy.
type Bridge struct {
	mu      sync.Mutex
	status  model.JobStatus
	jobID   string
	engine  Engine
	cb      Callbacks
	retries int
	backoff time.Duration
}

// NewBridge creates a bridge over the given engine.
func NewBridge(engine Engine) *Bridge {
	return &Bridge{
		status:  model.JobStatusIdle,
		engine:  engine,
		backoff: DefaultRetryBackoff,
	}
}

// SetCallbacks sets the outcome callbacks.
func (b *Bridge) SetCallbacks(cb Callbacks) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cb = cb
}

// SetRetryAttempts sets how many times a failed download is retried.
// Probes are never retried. Zero disables retries.
func (b *Bridge) SetRetryAttempts(attempts int) {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > MaxRetryAttempts {
		attempts = MaxRetryAttempts
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.retries = attempts
}

// Status returns the current job slot status.
func (b *Bridge) Status() model.JobStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Busy reports whether a job currently occupies the slot.
func (b *Bridge) Busy() bool {
	return b.Status().IsBusy()
}

// StartProbe dispatches a format probe for the URL. Returns ErrBusy when a
// job is already running.
func (b *Bridge) StartProbe(url string) error {
	b.mu.Lock()
	if b.status.IsBusy() {
		b.mu.Unlock()
		return ErrBusy
	}
	b.status = model.JobStatusProbing
	b.jobID = ProbeJobPrefix + uuid.NewString()
	jobID := b.jobID
	b.mu.Unlock()

	log.Printf("Dispatching probe job %s for %s", jobID, url)

	go b.runProbe(jobID, url)
	return nil
}

// StartDownload dispatches a download. The request is validated before the
// slot is taken; an invalid request never reaches the engine.
func (b *Bridge) StartDownload(req model.DownloadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	if b.status.IsBusy() {
		b.mu.Unlock()
		return ErrBusy
	}
	b.status = model.JobStatusDownloading
	b.jobID = DownloadJobPrefix + uuid.NewString()
	jobID := b.jobID
	b.mu.Unlock()

	log.Printf("Dispatching download job %s: url=%s format=%s dest=%s",
		jobID, req.URL, req.FormatID, req.DestDir)

	go b.runDownload(jobID, req)
	return nil
}

// runProbe executes the probe and delivers its terminal event.
func (b *Bridge) runProbe(jobID, url string) {
	result, err := b.engine.Probe(context.Background(), url)

	if err != nil {
		log.Printf("Probe job %s failed: %v", jobID, err)
		b.finish(model.JobStatusError)
		b.notifyError(err)
		return
	}

	log.Printf("Probe job %s returned %d formats", jobID, len(result.Formats))
	b.finish(model.JobStatusCompleted)

	b.mu.Lock()
	onResult := b.cb.OnProbeResult
	b.mu.Unlock()
	if onResult != nil {
		onResult(result)
	}
}

// runDownload executes the download, retrying per configuration, and delivers
// progress followed by exactly one terminal event.
func (b *Bridge) runDownload(jobID string, req model.DownloadRequest) {
	b.mu.Lock()
	onProgress := b.cb.OnProgress
	attempts := b.retries
	backoff := b.backoff
	b.mu.Unlock()

	// Progress events are forwarded synchronously from the engine callback on
	// this goroutine, so their order is the engine's emission order and the
	// terminal event below always comes last.
	forward := func(event model.ProgressEvent) {
		if onProgress != nil {
			onProgress(event)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= attempts; attempt++ {
		if attempt > 0 {
			log.Printf("Retrying download job %s, attempt %d", jobID, attempt+1)
			time.Sleep(backoff)
		}

		lastErr = b.engine.Download(context.Background(), req, forward)
		if lastErr == nil {
			break
		}
		log.Printf("Download job %s attempt %d failed: %v", jobID, attempt+1, lastErr)
	}

	if lastErr != nil {
		b.finish(model.JobStatusError)
		b.notifyError(lastErr)
		return
	}

	log.Printf("Download job %s completed", jobID)
	b.finish(model.JobStatusCompleted)

	b.mu.Lock()
	onComplete := b.cb.OnComplete
	b.mu.Unlock()
	if onComplete != nil {
		onComplete()
	}
}

// finish clears the job slot. Must run before the terminal callback so a
// handler can immediately dispatch the next job.
func (b *Bridge) finish(status model.JobStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.jobID = ""
}

// notifyError delivers a failure as a single user-facing message.
func (b *Bridge) notifyError(err error) {
	b.mu.Lock()
	onError := b.cb.OnError
	b.mu.Unlock()
	if onError != nil {
		onError(fmt.Sprintf("%v", err))
	}
}
