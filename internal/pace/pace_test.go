package pace

import (
	"math"
	"testing"
	"time"
)

func newFake(fps float64) (*Pacer, *time.Time, *[]time.Duration) {
	p := New(fps)
	clock := time.Unix(0, 0)
	var slept []time.Duration
	p.now = func() time.Time { return clock }
	p.sleep = func(d time.Duration) { slept = append(slept, d) }
	return p, &clock, &slept
}

func TestTickMeasuresElapsed(t *testing.T) {
	p, clock, _ := newFake(60)

	if dt := p.Tick(); dt != 0 {
		t.Errorf("first tick should report zero dt, got %f", dt)
	}
	*clock = clock.Add(16 * time.Millisecond)
	if dt := p.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("expected dt 0.016, got %f", dt)
	}
	if p.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", p.Frames())
	}
}

func TestPaceSleepsRemainder(t *testing.T) {
	p, _, slept := newFake(60)

	p.Pace(6 * time.Millisecond)
	if len(*slept) != 1 {
		t.Fatalf("expected one sleep, got %d", len(*slept))
	}
	want := p.Interval - 6*time.Millisecond
	if (*slept)[0] != want {
		t.Errorf("expected sleep %v, got %v", want, (*slept)[0])
	}
}

func TestPaceOverrunDoesNotSleep(t *testing.T) {
	p, _, slept := newFake(60)

	p.Pace(p.Interval)
	p.Pace(p.Interval + time.Second)
	if len(*slept) != 0 {
		t.Errorf("overrunning frames must not sleep, slept %v", *slept)
	}
}

func TestObserveSmoothing(t *testing.T) {
	p, _, _ := newFake(60)

	// One 20ms frame: inst = 50, smoothed = 60*0.85 + 50*0.15 = 58.5.
	got := p.Observe(20 * time.Millisecond)
	if math.Abs(got-58.5) > 1e-9 {
		t.Errorf("expected 58.5, got %f", got)
	}
	if p.Rate() != got {
		t.Errorf("Rate should return the last smoothed value")
	}
}

func TestObserveZeroCost(t *testing.T) {
	p, _, _ := newFake(60)
	if got := p.Observe(0); math.Abs(got-60) > 1e-9 {
		t.Errorf("zero-cost frame should hold the estimate, got %f", got)
	}
}

func TestNewDefaultsBadRate(t *testing.T) {
	p := New(0)
	if p.Interval != time.Second/60 {
		t.Errorf("non-positive fps should fall back to 60, got %v", p.Interval)
	}
}
