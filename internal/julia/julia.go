// Package julia evaluates quadratic escape-time iteration over a fixed
// complex viewport.
package julia

// Viewport bounds. The real axis spans 3 units and the imaginary axis 2;
// character cells are not square, so the image is stretched horizontally.
// That distortion is accepted rather than corrected.
const (
	reMin, reSpan = -1.5, 3.0
	imMin, imSpan = -1.0, 2.0
)

// EscapeCount iterates z <- z^2 + c from z and returns the number of
// iterations before |z|^2 exceeds 4, or maxIters if the orbit stays
// bounded. The loop works on unpacked float64 pairs; this is the hot path
// and must not allocate.
func EscapeCount(c, z complex128, maxIters int) int {
	cr, ci := real(c), imag(c)
	zr, zi := real(z), imag(z)
	iters := 0
	for zr*zr+zi*zi <= 4.0 && iters < maxIters {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		iters++
	}
	return iters
}

// PlanePoint maps grid cell (x, y) on a width x height grid to its
// complex-plane coordinate.
func PlanePoint(x, y, width, height int) complex128 {
	re := float64(x)/float64(width)*reSpan + reMin
	im := float64(y)/float64(height)*imSpan + imMin
	return complex(re, im)
}

// Field is a Julia set with a fixed parameter and iteration cap.
type Field struct {
	C        complex128
	MaxIters int
}

// Escape returns the escape count at z.
func (f Field) Escape(z complex128) int {
	return EscapeCount(f.C, z, f.MaxIters)
}
