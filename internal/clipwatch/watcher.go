// Package clipwatch polls the system clipboard and reports new text captures.
package clipwatch

import (
	"log"
	"strings"
	"sync"
	"time"
)

// Polling bounds and capture limits
const (
	DefaultPollInterval = 1 * time.Second
	MinPollInterval     = 100 * time.Millisecond

	// MaxCaptureLength guards against pathological clipboard payloads
	// (whole files, base64 blobs) flooding the history list.
	MaxCaptureLength = 10000
)

// Clipboard is the minimal read surface the watcher needs. fyne.Clipboard
// satisfies it; tests substitute a fake.
type Clipboard interface {
	Content() string
}

// Watcher polls a clipboard on a fixed interval and emits every content
// change through the capture callback. The first poll primes the last-seen
// value without emitting, so text already on the clipboard at startup is not
// re-captured.
type Watcher struct {
	clipboard Clipboard
	interval  time.Duration

	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	lastSeen string
	primed   bool

	onCapture func(text string)
}

// NewWatcher creates a stopped watcher for the given clipboard
func NewWatcher(clipboard Clipboard, interval time.Duration) *Watcher {
	if interval < MinPollInterval {
		interval = MinPollInterval
	}
	return &Watcher{
		clipboard: clipboard,
		interval:  interval,
	}
}

// SetCaptureCallback sets the callback fired for every new clipboard text.
// It is invoked from the watcher goroutine.
func (w *Watcher) SetCaptureCallback(callback func(text string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCapture = callback
}

// Running reports whether the watcher goroutine is active
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Start launches the poll goroutine. Starting a running watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	stop := make(chan struct{})
	w.stop = stop
	w.running = true
	w.primed = false

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()

	log.Printf("Clipboard watcher started (interval: %v)", w.interval)
}

// Stop terminates the poll goroutine. Stopping a stopped watcher is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stop)
	w.stop = nil
	w.running = false

	log.Printf("Clipboard watcher stopped")
}

// poll reads the clipboard once and emits the content when it changed since
// the last poll. Empty, whitespace-only, and oversized contents are skipped
// but still recorded as seen, so restoring earlier content re-captures it.
func (w *Watcher) poll() {
	content := w.clipboard.Content()

	w.mu.Lock()
	if !w.primed {
		w.primed = true
		w.lastSeen = content
		w.mu.Unlock()
		return
	}
	if content == w.lastSeen {
		w.mu.Unlock()
		return
	}
	w.lastSeen = content
	callback := w.onCapture
	w.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return
	}
	if len(content) > MaxCaptureLength {
		log.Printf("Skipping clipboard capture of %d bytes (limit %d)", len(content), MaxCaptureLength)
		return
	}

	if callback != nil {
		callback(content)
	}
}
