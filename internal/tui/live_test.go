package tui

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/san-kum/juliadrift/internal/config"
)

// stopAfterWriter flips the stop flag once it has seen grid rows, so Run
// exits after a single full frame.
type stopAfterWriter struct {
	buf  bytes.Buffer
	stop *atomic.Bool
}

func (w *stopAfterWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\n') >= 0 {
		w.stop.Store(true)
	}
	return w.buf.Write(p)
}

func TestRunSingleFrame(t *testing.T) {
	var stop atomic.Bool
	w := &stopAfterWriter{stop: &stop}

	cfg := config.DefaultConfig()
	cfg.FPS = 1000 // keep the pacing sleep negligible
	cfg.MaxIters = 40

	r := &Runner{Out: w, Size: func() (int, int) { return 40, 12 }}
	sum, err := r.Run(cfg, &stop)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", sum.Frames)
	}

	out := w.buf.String()
	if !strings.Contains(out, hideCursor) {
		t.Error("run should hide the cursor")
	}
	if !strings.Contains(out, showCursor) {
		t.Error("run must restore the cursor on exit")
	}
	if !strings.Contains(out, "julia drift") {
		t.Error("expected the HUD line in output")
	}
	if strings.Count(out, "\n") != 11 {
		t.Errorf("expected 11 grid rows for height 12 (one HUD line), got %d",
			strings.Count(out, "\n"))
	}
}

type failSinkWriter struct{ calls int }

func (w *failSinkWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("terminal gone")
}

func TestRunSurfacesFrameError(t *testing.T) {
	var stop atomic.Bool
	cfg := config.DefaultConfig()
	cfg.FPS = 1000
	cfg.MaxIters = 20

	r := &Runner{Out: &failSinkWriter{}, Size: func() (int, int) { return 20, 8 }}
	if _, err := r.Run(cfg, &stop); err == nil {
		t.Error("a failed frame write must be surfaced")
	}
}

func TestRunFallsBackOnBadSize(t *testing.T) {
	var stop atomic.Bool
	w := &stopAfterWriter{stop: &stop}

	cfg := config.DefaultConfig()
	cfg.FPS = 1000
	cfg.MaxIters = 20

	r := &Runner{Out: w, Size: func() (int, int) { return 0, 0 }}
	if _, err := r.Run(cfg, &stop); err != nil {
		t.Fatal(err)
	}
	// 80x24 fallback: 23 grid rows.
	if n := strings.Count(w.buf.String(), "\n"); n != 23 {
		t.Errorf("expected 23 rows from the 80x24 fallback, got %d", n)
	}
}

func TestSummaryAvgFPS(t *testing.T) {
	s := Summary{Frames: 120, Elapsed: 2 * time.Second}
	if got := s.AvgFPS(); got != 60 {
		t.Errorf("expected 60, got %f", got)
	}
	if got := (Summary{}).AvgFPS(); got != 0 {
		t.Errorf("zero elapsed should report 0, got %f", got)
	}
}
