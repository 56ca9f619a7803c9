// Package palette maps normalized escape values onto the xterm 256-color
// palette and a density character ramp.
package palette

import "math"

// Shades orders glyphs from empty to solid. Escape values index into it
// after gamma correction.
var Shades = []rune{' ', '.', ':', '-', '=', '+', '*', 'o', 'O', '#', '█'}

const (
	// grayThreshold selects the 24-step grayscale ramp over the color cube.
	grayThreshold = 0.08
	shadeGamma    = 0.85
)

// Color256 quantizes an HSV color to an xterm palette index. Saturated
// colors land in the 6x6x6 cube [16,231]; near-gray colors land in the
// grayscale ramp [232,255].
func Color256(hueDeg, sat, val float64) uint8 {
	if sat < grayThreshold {
		gray := int(math.Round(val * 23))
		if gray < 0 {
			gray = 0
		}
		if gray > 23 {
			gray = 23
		}
		return uint8(232 + gray)
	}

	h := math.Mod(math.Mod(hueDeg, 360)+360, 360) / 60
	c := val * sat
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r1, g1, b1 float64
	switch int(h) {
	case 0:
		r1, g1, b1 = c, x, 0
	case 1:
		r1, g1, b1 = x, c, 0
	case 2:
		r1, g1, b1 = 0, c, x
	case 3:
		r1, g1, b1 = 0, x, c
	case 4:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := val - c
	ri := quantize(r1 + m)
	gi := quantize(g1 + m)
	bi := quantize(b1 + m)
	return uint8(16 + 36*ri + 6*gi + bi)
}

func quantize(ch float64) int {
	q := int(math.Round(ch * 5))
	if q < 0 {
		q = 0
	}
	if q > 5 {
		q = 5
	}
	return q
}

// ShadeIndex maps norm in [0,1) to an index into Shades. The mapping is
// monotonic non-decreasing: a larger norm never yields a lighter glyph.
func ShadeIndex(norm float64) int {
	idx := int(math.Round(math.Pow(norm, shadeGamma) * float64(len(Shades)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(Shades)-1 {
		idx = len(Shades) - 1
	}
	return idx
}

// Shade returns the ramp glyph for norm.
func Shade(norm float64) rune {
	return Shades[ShadeIndex(norm)]
}
