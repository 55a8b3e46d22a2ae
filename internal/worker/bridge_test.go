package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/yt-picker/internal/model"
)

// fakeEngine is a controllable Engine for bridge tests.
type fakeEngine struct {
	mu            sync.Mutex
	probeCalls    int
	downloadCalls int

	probeFn    func(url string) (*model.ProbeResult, error)
	downloadFn func(req model.DownloadRequest, onProgress func(model.ProgressEvent)) error
}

func (f *fakeEngine) Probe(_ context.Context, url string) (*model.ProbeResult, error) {
	f.mu.Lock()
	f.probeCalls++
	f.mu.Unlock()
	return f.probeFn(url)
}

func (f *fakeEngine) Download(_ context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) error {
	f.mu.Lock()
	f.downloadCalls++
	f.mu.Unlock()
	return f.downloadFn(req, onProgress)
}

func (f *fakeEngine) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probeCalls, f.downloadCalls
}

func validRequest() model.DownloadRequest {
	return model.DownloadRequest{
		URL:      "https://example.com/video",
		FormatID: "22",
		DestDir:  "/tmp",
	}
}

func TestStartProbe_DeliversResult(t *testing.T) {
	engine := &fakeEngine{
		probeFn: func(url string) (*model.ProbeResult, error) {
			return &model.ProbeResult{
				SourceURL: url,
				Title:     "Test Video",
				Formats: []model.FormatDescriptor{
					{ID: "22", Resolution: "720p", Ext: "mp4"},
					{ID: "18", Resolution: "360p", Ext: "mp4"},
				},
			}, nil
		},
	}
	bridge := NewBridge(engine)

	done := make(chan *model.ProbeResult, 1)
	bridge.SetCallbacks(Callbacks{
		OnProbeResult: func(result *model.ProbeResult) { done <- result },
		OnError:       func(message string) { t.Errorf("Unexpected error: %s", message) },
	})

	if err := bridge.StartProbe("https://example.com/video"); err != nil {
		t.Fatalf("StartProbe failed: %v", err)
	}

	select {
	case result := <-done:
		if len(result.Formats) != 2 {
			t.Errorf("Expected 2 formats, got %d", len(result.Formats))
		}
		if result.Title != "Test Video" {
			t.Errorf("Expected title 'Test Video', got %q", result.Title)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Probe result not delivered")
	}

	if bridge.Busy() {
		t.Error("Bridge should not be busy after probe completes")
	}
	if bridge.Status() != model.JobStatusCompleted {
		t.Errorf("Expected status Completed, got %s", bridge.Status())
	}
}

func TestStartProbe_ErrorClearsSlot(t *testing.T) {
	engine := &fakeEngine{
		probeFn: func(string) (*model.ProbeResult, error) {
			return nil, errors.New("unsupported URL")
		},
	}
	bridge := NewBridge(engine)

	errCh := make(chan string, 1)
	bridge.SetCallbacks(Callbacks{
		OnProbeResult: func(*model.ProbeResult) { t.Error("Unexpected probe result") },
		OnError:       func(message string) { errCh <- message },
	})

	if err := bridge.StartProbe("https://example.com/broken"); err != nil {
		t.Fatalf("StartProbe failed: %v", err)
	}

	select {
	case message := <-errCh:
		if message != "unsupported URL" {
			t.Errorf("Expected error message 'unsupported URL', got %q", message)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Error not delivered")
	}

	if bridge.Status() != model.JobStatusError {
		t.Errorf("Expected status Error, got %s", bridge.Status())
	}

	// Slot must be clear so the user can retry immediately
	if err := bridge.StartProbe("https://example.com/retry"); err != nil {
		t.Errorf("Expected retry to be accepted, got %v", err)
	}
}

func TestSingleJobSlot(t *testing.T) {
	release := make(chan struct{})
	engine := &fakeEngine{
		probeFn: func(string) (*model.ProbeResult, error) {
			<-release
			return &model.ProbeResult{}, nil
		},
	}
	bridge := NewBridge(engine)

	done := make(chan struct{}, 1)
	bridge.SetCallbacks(Callbacks{
		OnProbeResult: func(*model.ProbeResult) { done <- struct{}{} },
	})

	if err := bridge.StartProbe("https://example.com/first"); err != nil {
		t.Fatalf("First StartProbe failed: %v", err)
	}

	// A second submission of either kind must be rejected, not queued
	if err := bridge.StartProbe("https://example.com/second"); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy for concurrent probe, got %v", err)
	}
	if err := bridge.StartDownload(validRequest()); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy for concurrent download, got %v", err)
	}

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("First probe never finished")
	}

	probeCalls, downloadCalls := engine.calls()
	if probeCalls != 1 {
		t.Errorf("Expected exactly 1 probe call, got %d", probeCalls)
	}
	if downloadCalls != 0 {
		t.Errorf("Expected 0 download calls, got %d", downloadCalls)
	}

	// Slot is free again
	if err := bridge.StartProbe("https://example.com/third"); err != nil {
		t.Errorf("Expected probe to be accepted after completion, got %v", err)
	}
	<-done
}

func TestStartDownload_ValidationBlocksDispatch(t *testing.T) {
	engine := &fakeEngine{
		downloadFn: func(model.DownloadRequest, func(model.ProgressEvent)) error {
			return nil
		},
	}
	bridge := NewBridge(engine)

	tests := []struct {
		name     string
		req      model.DownloadRequest
		expected error
	}{
		{"no format", model.DownloadRequest{URL: "https://example.com/v", DestDir: "/tmp"}, model.ErrNoFormat},
		{"no destination", model.DownloadRequest{URL: "https://example.com/v", FormatID: "22"}, model.ErrNoDestination},
		{"no url", model.DownloadRequest{FormatID: "22", DestDir: "/tmp"}, model.ErrNoURL},
	}

	// Repeated invalid calls must never reach the engine
	for round := 0; round < 3; round++ {
		for _, test := range tests {
			err := bridge.StartDownload(test.req)
			if !errors.Is(err, test.expected) {
				t.Errorf("%s: expected %v, got %v", test.name, test.expected, err)
			}
		}
	}

	if _, downloadCalls := engine.calls(); downloadCalls != 0 {
		t.Errorf("Expected 0 dispatches for invalid requests, got %d", downloadCalls)
	}
	if bridge.Busy() {
		t.Error("Bridge must stay idle after rejected dispatches")
	}
}

func TestDownload_ProgressOrderingAndTerminalEvent(t *testing.T) {
	percents := []float64{10, 55, 90}
	engine := &fakeEngine{
		downloadFn: func(_ model.DownloadRequest, onProgress func(model.ProgressEvent)) error {
			for _, p := range percents {
				onProgress(model.ProgressEvent{Percent: p, Speed: "1.0 MB/s"})
			}
			return nil
		},
	}
	bridge := NewBridge(engine)

	var mu sync.Mutex
	var events []float64
	terminalAfter := -1

	done := make(chan struct{}, 1)
	bridge.SetCallbacks(Callbacks{
		OnProgress: func(event model.ProgressEvent) {
			mu.Lock()
			events = append(events, event.Percent)
			mu.Unlock()
		},
		OnComplete: func() {
			mu.Lock()
			terminalAfter = len(events)
			mu.Unlock()
			done <- struct{}{}
		},
		OnError: func(message string) { t.Errorf("Unexpected error: %s", message) },
	})

	if err := bridge.StartDownload(validRequest()); err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Download never completed")
	}

	mu.Lock()
	defer mu.Unlock()

	if len(events) != len(percents) {
		t.Fatalf("Expected %d progress events, got %d", len(percents), len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i] < events[i-1] {
			t.Errorf("Progress went backwards: %v", events)
		}
	}
	for i, p := range percents {
		if events[i] != p {
			t.Errorf("Event %d: expected %.0f, got %.0f", i, p, events[i])
		}
	}
	if terminalAfter != len(percents) {
		t.Errorf("Terminal event fired after %d progress events, expected %d", terminalAfter, len(percents))
	}
}

func TestDownload_ErrorSurfacesMessage(t *testing.T) {
	engine := &fakeEngine{
		downloadFn: func(model.DownloadRequest, func(model.ProgressEvent)) error {
			return errors.New("network timeout")
		},
	}
	bridge := NewBridge(engine)

	errCh := make(chan string, 1)
	bridge.SetCallbacks(Callbacks{
		OnComplete: func() { t.Error("Unexpected completion") },
		OnError:    func(message string) { errCh <- message },
	})

	if err := bridge.StartDownload(validRequest()); err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	select {
	case message := <-errCh:
		if message != "network timeout" {
			t.Errorf("Expected message 'network timeout', got %q", message)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Error not delivered")
	}

	// No partial state left behind: slot idle, next dispatch accepted
	if bridge.Busy() {
		t.Error("Bridge should not be busy after failed download")
	}
	if err := bridge.StartDownload(validRequest()); err != nil {
		t.Errorf("Expected resubmission to be accepted, got %v", err)
	}
}

func TestDownload_RetryAttempts(t *testing.T) {
	var mu sync.Mutex
	failures := 1
	engine := &fakeEngine{
		downloadFn: func(model.DownloadRequest, func(model.ProgressEvent)) error {
			mu.Lock()
			defer mu.Unlock()
			if failures > 0 {
				failures--
				return errors.New("transient failure")
			}
			return nil
		},
	}
	bridge := NewBridge(engine)
	bridge.SetRetryAttempts(1)
	bridge.backoff = time.Millisecond

	done := make(chan struct{}, 1)
	bridge.SetCallbacks(Callbacks{
		OnComplete: func() { done <- struct{}{} },
		OnError:    func(message string) { t.Errorf("Unexpected error: %s", message) },
	})

	if err := bridge.StartDownload(validRequest()); err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Download never completed")
	}

	if _, downloadCalls := engine.calls(); downloadCalls != 2 {
		t.Errorf("Expected 2 download attempts, got %d", downloadCalls)
	}
}

func TestSetRetryAttempts_Clamps(t *testing.T) {
	bridge := NewBridge(&fakeEngine{})

	bridge.SetRetryAttempts(-5)
	if bridge.retries != 0 {
		t.Errorf("Expected negative attempts clamped to 0, got %d", bridge.retries)
	}

	bridge.SetRetryAttempts(50)
	if bridge.retries != MaxRetryAttempts {
		t.Errorf("Expected attempts clamped to %d, got %d", MaxRetryAttempts, bridge.retries)
	}
}
