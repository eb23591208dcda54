package clipwatch

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClipboard is a thread-safe in-memory clipboard
type fakeClipboard struct {
	mu      sync.Mutex
	content string
}

func (f *fakeClipboard) Content() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content
}

func (f *fakeClipboard) set(content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = content
}

// captureRecorder collects watcher captures
type captureRecorder struct {
	mu       sync.Mutex
	captures []string
}

func (r *captureRecorder) record(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captures = append(r.captures, text)
}

func (r *captureRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.captures))
	copy(out, r.captures)
	return out
}

func (r *captureRecorder) waitFor(t *testing.T, count int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := r.snapshot(); len(got) >= count {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d captures, got %v", count, r.snapshot())
	return nil
}

func TestWatcher_CapturesChanges(t *testing.T) {
	clipboard := &fakeClipboard{content: "preexisting"}
	recorder := &captureRecorder{}

	w := NewWatcher(clipboard, MinPollInterval)
	w.SetCaptureCallback(recorder.record)
	w.Start()
	defer w.Stop()

	// Give the first poll time to prime the last-seen value
	time.Sleep(3 * MinPollInterval)
	clipboard.set("first capture")
	recorder.waitFor(t, 1)
	clipboard.set("second capture")

	captures := recorder.waitFor(t, 2)
	if captures[0] != "first capture" || captures[1] != "second capture" {
		t.Errorf("captures = %v, expected both changes in order", captures)
	}

	// Pre-existing content must never be emitted
	for _, c := range captures {
		if c == "preexisting" {
			t.Error("startup clipboard content was captured")
		}
	}
}

func TestWatcher_SkipsBlankAndOversized(t *testing.T) {
	clipboard := &fakeClipboard{}
	recorder := &captureRecorder{}

	w := NewWatcher(clipboard, MinPollInterval)
	w.SetCaptureCallback(recorder.record)
	w.Start()
	defer w.Stop()

	time.Sleep(3 * MinPollInterval)
	clipboard.set("   \n\t  ")
	time.Sleep(3 * MinPollInterval)
	clipboard.set(strings.Repeat("x", MaxCaptureLength+1))
	time.Sleep(3 * MinPollInterval)
	clipboard.set("kept")

	captures := recorder.waitFor(t, 1)
	if len(captures) != 1 || captures[0] != "kept" {
		t.Errorf("captures = %v, expected only [kept]", captures)
	}
}

func TestWatcher_UnchangedContentNotRepeated(t *testing.T) {
	clipboard := &fakeClipboard{}
	recorder := &captureRecorder{}

	w := NewWatcher(clipboard, MinPollInterval)
	w.SetCaptureCallback(recorder.record)
	w.Start()
	defer w.Stop()

	time.Sleep(3 * MinPollInterval)
	clipboard.set("same text")
	recorder.waitFor(t, 1)

	// Many more polls over identical content
	time.Sleep(5 * MinPollInterval)
	if got := recorder.snapshot(); len(got) != 1 {
		t.Errorf("unchanged content captured %d times, expected 1", len(got))
	}
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	w := NewWatcher(&fakeClipboard{}, MinPollInterval)

	w.Start()
	w.Start()
	if !w.Running() {
		t.Fatal("watcher not running after Start")
	}

	w.Stop()
	w.Stop()
	if w.Running() {
		t.Fatal("watcher still running after Stop")
	}

	// Restart works after a stop
	w.Start()
	if !w.Running() {
		t.Fatal("watcher not running after restart")
	}
	w.Stop()
}

func TestNewWatcher_ClampsInterval(t *testing.T) {
	w := NewWatcher(&fakeClipboard{}, time.Millisecond)
	if w.interval != MinPollInterval {
		t.Errorf("interval = %v, expected clamp to %v", w.interval, MinPollInterval)
	}
}
