package render

import (
	"fmt"
	"math"
)

// Color is a straight-alpha color with channels in [0, 1].
type Color struct{ R, G, B, A float64 }

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// RGB255 builds a color from 8-bit channels.
func RGB255(r, g, b, a float64) Color {
	return Color{unit(r / 255), unit(g / 255), unit(b / 255), unit(a)}
}

// HSL builds a color from a hue in degrees (any range, wrapped) and
// saturation/lightness in [0, 1].
func HSL(h, s, l, a float64) Color {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, l = unit(s), unit(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{r + m, g + m, b + m, unit(a)}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = unit(a)
	return c
}

// RGBA8 returns the color as 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return byte255(c.R), byte255(c.G), byte255(c.B), byte255(c.A)
}

// Hex formats the opaque part as #rrggbb.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Luma is the perceived brightness scaled by alpha.
func (c Color) Luma() float64 {
	return (0.299*c.R + 0.587*c.G + 0.114*c.B) * c.A
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func byte255(v float64) uint8 { return uint8(math.Round(unit(v) * 255)) }
