package orion

import (
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestTimingFirstDeltaIsMeasuredFromConstruction(t *testing.T) {
	clk := clock.NewMock()
	timing := NewTiming(clk)

	if timing.Delta() != 0 {
		t.Fatalf("Delta() = %v before first sample, want 0", timing.Delta())
	}

	if _, ok := timing.FramesPerSecond(); ok {
		t.Fatal("FramesPerSecond() reported a value before the first sample")
	}

	clk.Add(25 * time.Millisecond)
	timing.Sample()

	if timing.Delta() != 25*time.Millisecond {
		t.Errorf("Delta() = %v, want 25ms", timing.Delta())
	}

	fps, ok := timing.FramesPerSecond()
	if !ok || math.Abs(fps-40) > 1e-9 {
		t.Errorf("FramesPerSecond() = %v, %v, want 40, true", fps, ok)
	}
}

func TestTimingZeroDeltaHasNoFramesPerSecond(t *testing.T) {
	clk := clock.NewMock()
	timing := NewTiming(clk)

	// two samples without the clock moving
	timing.Sample()
	timing.Sample()

	if fps, ok := timing.FramesPerSecond(); ok {
		t.Errorf("FramesPerSecond() = %v, true for zero delta", fps)
	}
}

func TestTimingMonotonic(t *testing.T) {
	clk := clock.NewMock()
	timing := NewTiming(clk)

	steps := []time.Duration{0, time.Millisecond, 16 * time.Millisecond, 0, 33 * time.Millisecond, 0, time.Second}

	var lastElapsed time.Duration
	var total time.Duration

	for idx, step := range steps {
		clk.Add(step)
		total += step

		timing.Sample()

		if timing.Delta() != step {
			t.Errorf("step %d: Delta() = %v, want %v", idx, timing.Delta(), step)
		}

		elapsed := timing.Elapsed()
		if elapsed < lastElapsed {
			t.Errorf("step %d: Elapsed() went backward from %v to %v", idx, lastElapsed, elapsed)
		}

		if elapsed != total {
			t.Errorf("step %d: Elapsed() = %v, want %v", idx, elapsed, total)
		}

		lastElapsed = elapsed
	}

	if timing.FrameCount() != uint64(len(steps)) {
		t.Errorf("FrameCount() = %d, want %d", timing.FrameCount(), len(steps))
	}

	if timing.MaxDelta() != time.Second {
		t.Errorf("MaxDelta() = %v, want 1s", timing.MaxDelta())
	}
}

func TestTimingClampsBackwardClock(t *testing.T) {
	clk := clock.NewMock()
	clk.Add(time.Hour)

	timing := NewTiming(clk)

	clk.Add(10 * time.Millisecond)
	timing.Sample()

	// step the clock back before the last sample
	clk.Set(clk.Now().Add(-time.Minute))
	timing.Sample()

	if timing.Delta() != 0 {
		t.Errorf("Delta() = %v after clock went backward, want 0", timing.Delta())
	}

	if timing.Elapsed() != 10*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 10ms", timing.Elapsed())
	}
}

func TestTimingAverageFramesPerSecond(t *testing.T) {
	clk := clock.NewMock()
	timing := NewTiming(clk)

	for range 100 {
		clk.Add(20 * time.Millisecond)
		timing.Sample()
	}

	fps, ok := timing.AverageFramesPerSecond()
	if !ok || math.Abs(fps-50) > 1e-9 {
		t.Errorf("AverageFramesPerSecond() = %v, %v, want 50, true", fps, ok)
	}
}
