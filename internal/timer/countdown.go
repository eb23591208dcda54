package timer

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// State represents the countdown lifecycle state
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateDone    State = "done"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// Default tick resolution for UI updates
const DefaultTickInterval = 250 * time.Millisecond

// Countdown is a pausable countdown timer. The remaining time is tracked
// against a wall-clock deadline while running, so ticks only drive UI updates
// and never accumulate drift.
type Countdown struct {
	mu       sync.Mutex
	state    State
	duration time.Duration

	// Running state
	deadline time.Time
	// Paused state
	remaining time.Duration

	tickInterval time.Duration
	stopTicker   chan struct{}

	onTick func(remaining time.Duration)
	onDone func()
}

// NewCountdown creates an idle countdown with no duration set
func NewCountdown() *Countdown {
	return &Countdown{
		state:        StateIdle,
		tickInterval: DefaultTickInterval,
	}
}

// SetCallbacks sets the tick and completion callbacks. Both are invoked from
// the timer goroutine; UI code must marshal updates itself.
func (c *Countdown) SetCallbacks(onTick func(remaining time.Duration), onDone func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = onTick
	c.onDone = onDone
}

// SetDuration sets the countdown duration. Only allowed while idle or done;
// it also resets a finished timer back to idle.
func (c *Countdown) SetDuration(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning || c.state == StatePaused {
		return fmt.Errorf("cannot change duration while %s", c.state)
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}

	c.duration = d
	c.remaining = d
	c.state = StateIdle
	return nil
}

// State returns the current lifecycle state
func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the time left on the countdown
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingLocked()
}

func (c *Countdown) remainingLocked() time.Duration {
	switch c.state {
	case StateRunning:
		left := time.Until(c.deadline)
		if left < 0 {
			return 0
		}
		return left
	case StatePaused:
		return c.remaining
	case StateDone:
		return 0
	default:
		return c.duration
	}
}

// Start begins the countdown from the configured duration
func (c *Countdown) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.duration <= 0 {
		return fmt.Errorf("no duration set")
	}
	if c.state == StateRunning {
		return fmt.Errorf("timer already running")
	}

	c.deadline = time.Now().Add(c.duration)
	c.state = StateRunning
	c.startTickerLocked()
	return nil
}

// Pause freezes the countdown, keeping the remaining time
func (c *Countdown) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return fmt.Errorf("timer is not running (state: %s)", c.state)
	}

	c.remaining = c.remainingLocked()
	c.state = StatePaused
	c.stopTickerLocked()
	return nil
}

// Resume continues a paused countdown from where it stopped
func (c *Countdown) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePaused {
		return fmt.Errorf("timer is not paused (state: %s)", c.state)
	}

	c.deadline = time.Now().Add(c.remaining)
	c.state = StateRunning
	c.startTickerLocked()
	return nil
}

// Reset stops the countdown and restores the configured duration
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTickerLocked()
	c.state = StateIdle
	c.remaining = c.duration
}

// startTickerLocked launches the tick goroutine. Caller must hold the mutex.
func (c *Countdown) startTickerLocked() {
	stop := make(chan struct{})
	c.stopTicker = stop

	go func() {
		ticker := time.NewTicker(c.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if c.tick(stop) {
					return
				}
			}
		}
	}()
}

// tick reports the remaining time and fires completion at zero. Returns true
// when the countdown finished and the goroutine should exit.
func (c *Countdown) tick(stop chan struct{}) bool {
	c.mu.Lock()
	if c.state != StateRunning || c.stopTicker != stop {
		c.mu.Unlock()
		return true
	}

	left := c.remainingLocked()
	onTick := c.onTick
	var onDone func()
	if left == 0 {
		c.state = StateDone
		c.stopTicker = nil
		onDone = c.onDone
		log.Printf("Countdown finished after %v", c.duration)
	}
	c.mu.Unlock()

	if onTick != nil {
		onTick(left)
	}
	if onDone != nil {
		onDone()
		return true
	}
	return false
}

// stopTickerLocked signals the tick goroutine to exit. Caller must hold the
// mutex.
func (c *Countdown) stopTickerLocked() {
	if c.stopTicker != nil {
		close(c.stopTicker)
		c.stopTicker = nil
	}
}

// FormatRemaining renders a duration as MM:SS, or H:MM:SS past an hour
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
