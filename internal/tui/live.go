// Package tui runs the full-speed animation loop against a raw terminal,
// redrawing whole frames at the target rate until the stop flag is set.
package tui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/san-kum/juliadrift/internal/anim"
	"github.com/san-kum/juliadrift/internal/config"
	"github.com/san-kum/juliadrift/internal/julia"
	"github.com/san-kum/juliadrift/internal/pace"
	"github.com/san-kum/juliadrift/internal/render"
)

const (
	enterAltScreen = "\033[?1049h"
	leaveAltScreen = "\033[?1049l"
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
	cursorHome     = "\033[H"
	clearScreen    = "\033[2J\033[H"
	clearLine      = "\033[2K"
)

// Summary reports what the loop did before it stopped.
type Summary struct {
	Frames  uint64
	Elapsed time.Duration
}

// AvgFPS is the whole-run average rate.
func (s Summary) AvgFPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Runner owns the live loop. Out receives raw frames; Size is polled every
// frame so resizes take effect immediately.
type Runner struct {
	Out  io.Writer
	Size func() (width, height int)
}

// Run animates until stop is set or a frame write fails. The stop flag is
// the only shared state: the signal handler writes it, the loop reads it
// once per frame. Terminal state is restored on every exit path.
func (r *Runner) Run(cfg *config.Config, stop *atomic.Bool) (Summary, error) {
	walk := anim.Config{
		Base:    complex(cfg.Walk.BaseRe, cfg.Walk.BaseIm),
		Radius:  cfg.Walk.Radius,
		Accel:   cfg.Walk.Accel,
		Damping: cfg.Walk.Damping,
	}
	state := anim.NewState(cfg.Seed)
	pacer := pace.New(cfg.FPS)
	renderer := &render.Renderer{Workers: cfg.Workers}

	fmt.Fprint(r.Out, enterAltScreen, hideCursor, clearScreen)
	defer fmt.Fprint(r.Out, showCursor, leaveAltScreen)

	start := time.Now()
	var frameErr error

	for !stop.Load() {
		dt := pacer.Tick()
		frameStart := time.Now()

		width, height := r.Size()
		if cfg.Width > 0 {
			width = cfg.Width
		}
		if cfg.Height > 0 {
			height = cfg.Height
		}
		if width <= 0 || height <= 1 {
			width, height = 80, 24
		}
		height-- // last line is the HUD

		var c complex128
		state, c = anim.Advance(walk, state, dt)

		fmt.Fprint(r.Out, cursorHome)
		field := julia.Field{C: c, MaxIters: cfg.MaxIters}
		if _, err := renderer.Frame(field, width, height, cfg.MaxIters, r.Out); err != nil {
			frameErr = err
			break
		}

		cost := time.Since(frameStart)
		fps := pacer.Observe(cost)
		fmt.Fprintf(r.Out, "%sjulia drift | c=(%+.3f,%+.3f) | frame %d | fps %.1f (ctrl+c to quit)",
			clearLine, real(c), imag(c), pacer.Frames(), fps)

		pacer.Pace(cost)
	}

	return Summary{Frames: pacer.Frames(), Elapsed: time.Since(start)}, frameErr
}
