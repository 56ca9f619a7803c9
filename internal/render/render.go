// Package render walks the pixel grid and encodes frames as ANSI 256-color
// text, emitting a color directive only when the run color changes.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/juliadrift/internal/julia"
	"github.com/san-kum/juliadrift/internal/palette"
)

// Field yields the escape iteration count at a plane point.
type Field interface {
	Escape(z complex128) int
}

const ansiReset = "\x1b[0m"

// colorSeq caches the foreground-select sequence for every palette index.
var colorSeq [256]string

func init() {
	for i := range colorSeq {
		colorSeq[i] = fmt.Sprintf("\x1b[38;5;%dm", i)
	}
}

// Renderer encodes frames for a fixed grid geometry. The iteration buffer
// is reused across frames. Not safe for concurrent use.
type Renderer struct {
	// Workers bounds the row-evaluation goroutines; 0 uses GOMAXPROCS,
	// 1 forces serial evaluation.
	Workers int

	iters []int
}

// Frame evaluates the field over a width x height grid and writes one full
// frame to sink: height rows of glyphs, colors run-length compressed, each
// row reset-terminated when a color is open. It returns the number of
// styling directives emitted. A sink write error aborts the frame and is
// returned as-is.
func (r *Renderer) Frame(f Field, width, height, maxIters int, sink io.Writer) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("render: invalid grid %dx%d", width, height)
	}

	if cap(r.iters) < width*height {
		r.iters = make([]int, width*height)
	}
	iters := r.iters[:width*height]

	// Evaluation phase. Rows are independent, so they can be filled
	// concurrently; emission below stays strictly row-major.
	parallelRows(height, r.Workers, func(start, end int) {
		for y := start; y < end; y++ {
			row := iters[y*width : (y+1)*width]
			for x := 0; x < width; x++ {
				row[x] = f.Escape(julia.PlanePoint(x, y, width, height))
			}
		}
	})

	w := bufio.NewWriterSize(sink, width*height/2+1024)
	directives := 0
	active := -1 // no color open

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := iters[y*width+x]
			if n >= maxIters {
				if active >= 0 {
					w.WriteString(ansiReset)
					directives++
					active = -1
				}
				w.WriteByte(' ')
				continue
			}

			norm := float64(n) / float64(maxIters)
			color := int(palette.Color256(norm*360.0, 0.9, 1.0))
			if color != active {
				w.WriteString(colorSeq[color])
				directives++
				active = color
			}
			w.WriteRune(palette.Shade(norm))
		}
		if active >= 0 {
			w.WriteString(ansiReset)
			directives++
			active = -1
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return directives, err
	}
	return directives, nil
}
