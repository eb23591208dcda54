package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdown_StateTransitions(t *testing.T) {
	c := NewCountdown()

	if c.State() != StateIdle {
		t.Fatalf("new countdown state = %s, expected idle", c.State())
	}

	if err := c.Start(); err == nil {
		t.Error("Start without duration should fail")
	}

	if err := c.SetDuration(time.Minute); err != nil {
		t.Fatalf("SetDuration failed: %v", err)
	}
	if c.Remaining() != time.Minute {
		t.Errorf("Remaining() = %v, expected 1m", c.Remaining())
	}

	if err := c.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if c.State() != StateRunning {
		t.Errorf("state after Start = %s, expected running", c.State())
	}
	if err := c.Start(); err == nil {
		t.Error("Start while running should fail")
	}
	if err := c.SetDuration(time.Second); err == nil {
		t.Error("SetDuration while running should fail")
	}

	if err := c.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if c.State() != StatePaused {
		t.Errorf("state after Pause = %s, expected paused", c.State())
	}
	if err := c.Pause(); err == nil {
		t.Error("Pause while paused should fail")
	}

	if err := c.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if c.State() != StateRunning {
		t.Errorf("state after Resume = %s, expected running", c.State())
	}

	c.Reset()
	if c.State() != StateIdle {
		t.Errorf("state after Reset = %s, expected idle", c.State())
	}
	if c.Remaining() != time.Minute {
		t.Errorf("Remaining() after Reset = %v, expected 1m", c.Remaining())
	}
}

func TestCountdown_PauseKeepsRemaining(t *testing.T) {
	c := NewCountdown()
	if err := c.SetDuration(time.Hour); err != nil {
		t.Fatalf("SetDuration failed: %v", err)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := c.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	left := c.Remaining()
	if left <= 0 || left > time.Hour {
		t.Fatalf("Remaining() while paused = %v, expected near 1h", left)
	}

	time.Sleep(50 * time.Millisecond)
	if c.Remaining() != left {
		t.Errorf("Remaining() advanced while paused: %v -> %v", left, c.Remaining())
	}
}

func TestCountdown_FiresDone(t *testing.T) {
	c := NewCountdown()
	c.tickInterval = 10 * time.Millisecond

	var ticks, dones atomic.Int32
	c.SetCallbacks(
		func(remaining time.Duration) { ticks.Add(1) },
		func() { dones.Add(1) },
	)

	if err := c.SetDuration(60 * time.Millisecond); err != nil {
		t.Fatalf("SetDuration failed: %v", err)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.State() != StateDone && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if c.State() != StateDone {
		t.Fatalf("countdown never finished (state: %s)", c.State())
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() after done = %v, expected 0", c.Remaining())
	}
	if ticks.Load() == 0 {
		t.Error("expected at least one tick callback")
	}

	// Done fires exactly once even after waiting past completion
	time.Sleep(50 * time.Millisecond)
	if dones.Load() != 1 {
		t.Errorf("done fired %d times, expected 1", dones.Load())
	}

	// A done timer can be re-armed
	if err := c.SetDuration(time.Minute); err != nil {
		t.Fatalf("SetDuration after done failed: %v", err)
	}
	if c.State() != StateIdle {
		t.Errorf("state after re-arm = %s, expected idle", c.State())
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{5 * time.Second, "00:05"},
		{90 * time.Second, "01:30"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2:03:04"},
	}

	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.expected {
			t.Errorf("FormatRemaining(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
