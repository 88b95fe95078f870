package orion

import (
	"time"

	"github.com/benbjohnson/clock"
)

// number of frames the moving average of the frame time spans
const averageWindow = 64

// Timing measures the time between frames and since startup.
type Timing struct {
	clock clock.Clock

	start time.Time
	last  time.Time

	// Delta time to previous frame
	delta time.Duration

	frameCount   uint64
	averageDelta time.Duration
	maxDelta     time.Duration
}

// NewTiming starts measuring time using the given clock. A nil clock
// uses the wall clock.
func NewTiming(clk clock.Clock) *Timing {
	if clk == nil {
		clk = clock.New()
	}

	now := clk.Now()

	return &Timing{
		clock: clk,
		start: now,
		last:  now,
	}
}

// Sample records the time since the previous sample, or since construction
// for the first sample. It must be called once at the start of each frame.
func (t *Timing) Sample() {
	now := t.now()

	t.delta = now.Sub(t.last)
	t.last = now

	t.frameCount += 1

	t.maxDelta = max(t.maxDelta, t.delta)

	if t.frameCount < averageWindow/2 {
		t.averageDelta = t.delta
	} else {
		t.averageDelta = ((averageWindow-1)*t.averageDelta + t.delta) / averageWindow
	}
}

// Delta returns the duration between the two most recent samples. It is
// zero until Sample was called for the first time.
func (t *Timing) Delta() time.Duration {
	return t.delta
}

// FramesPerSecond derives the frame rate from the last delta. The second
// return value is false if the delta is zero, e.g. before the first frame.
func (t *Timing) FramesPerSecond() (float64, bool) {
	if t.delta <= 0 {
		return 0, false
	}

	return 1.0 / t.delta.Seconds(), true
}

// AverageFramesPerSecond is like FramesPerSecond but uses a moving average
// over the last frames, which makes it usable for display purposes.
func (t *Timing) AverageFramesPerSecond() (float64, bool) {
	if t.averageDelta <= 0 {
		return 0, false
	}

	return 1.0 / t.averageDelta.Seconds(), true
}

// Elapsed returns the time since the Timing was created.
func (t *Timing) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// FrameCount returns the number of samples taken so far.
func (t *Timing) FrameCount() uint64 {
	return t.frameCount
}

// MaxDelta returns the longest frame observed so far.
func (t *Timing) MaxDelta() time.Duration {
	return t.maxDelta
}

// now reads the clock but never returns a time before the last sample,
// so a clock stepping backward can not produce negative durations.
func (t *Timing) now() time.Time {
	now := t.clock.Now()
	if now.Before(t.last) {
		return t.last
	}

	return now
}
