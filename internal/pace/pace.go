// Package pace keeps the frame loop at a fixed target rate and tracks a
// display-only smoothed rate estimate.
package pace

import "time"

// smoothing weights for the instantaneous-rate estimate.
const (
	keep  = 0.85
	blend = 0.15
)

// Pacer measures per-frame elapsed time and sleeps off any unused frame
// budget. The simulation consumes measured dt, so an overrunning frame
// lowers the displayed rate but never desynchronizes physics from the
// wall clock.
type Pacer struct {
	Interval time.Duration

	last     time.Time
	frames   uint64
	smoothed float64

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a pacer targeting the given frames per second.
func New(fps float64) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	return &Pacer{
		Interval: time.Duration(float64(time.Second) / fps),
		smoothed: fps,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Tick marks the start of a frame and returns the wall-clock seconds since
// the previous Tick. The first call returns zero.
func (p *Pacer) Tick() float64 {
	now := p.now()
	dt := 0.0
	if !p.last.IsZero() {
		dt = now.Sub(p.last).Seconds()
	}
	p.last = now
	p.frames++
	return dt
}

// Pace sleeps for whatever remains of the frame budget after cost. An
// overrunning frame returns immediately; there is no catch-up.
func (p *Pacer) Pace(cost time.Duration) {
	if cost >= p.Interval {
		return
	}
	p.sleep(p.Interval - cost)
}

// Observe folds one frame cost into the smoothed rate estimate and
// returns the new value. Display only; pacing decisions ignore it.
func (p *Pacer) Observe(cost time.Duration) float64 {
	inst := p.smoothed
	if s := cost.Seconds(); s > 0 {
		inst = 1.0 / s
	}
	p.smoothed = p.smoothed*keep + inst*blend
	return p.smoothed
}

// Frames returns the number of Tick calls so far.
func (p *Pacer) Frames() uint64 { return p.frames }

// Rate returns the current smoothed rate estimate.
func (p *Pacer) Rate() float64 { return p.smoothed }
