package game

import (
	"fmt"
	"time"
)

// Timer tracks elapsed play time with pause/resume. Paused intervals
// are excluded by shifting the start forward on resume.
type Timer struct {
	now      func() time.Time
	start    time.Time
	pausedAt time.Time
	running  bool
	paused   bool
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// NewTimerWithClock injects the time source, mainly for tests.
func NewTimerWithClock(now func() time.Time) *Timer { return &Timer{now: now} }

// Start resets and begins counting.
func (t *Timer) Start() {
	t.start = t.now()
	t.running = true
	t.paused = false
}

// Stop halts counting and discards the elapsed time.
func (t *Timer) Stop() {
	t.running = false
	t.paused = false
}

func (t *Timer) Pause() {
	if t.running && !t.paused {
		t.paused = true
		t.pausedAt = t.now()
	}
}

func (t *Timer) Resume() {
	if t.running && t.paused {
		t.start = t.start.Add(t.now().Sub(t.pausedAt))
		t.paused = false
	}
}

func (t *Timer) Paused() bool { return t.running && t.paused }

// SetElapsed rewinds the start so Elapsed reports d, used when
// resuming a saved game.
func (t *Timer) SetElapsed(d time.Duration) {
	t.start = t.now().Add(-d)
	if t.paused {
		t.pausedAt = t.now()
	}
}

func (t *Timer) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	if t.paused {
		return t.pausedAt.Sub(t.start)
	}
	return t.now().Sub(t.start)
}

// FormatElapsed renders a duration as MM:SS; hours spill into minutes.
func FormatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
