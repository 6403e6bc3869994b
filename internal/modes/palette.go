package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/render"
)

// Palette maps an intensity v in [0, 1] and the clock time to a color.
type Palette func(v, t float64) render.Color

// Palettes is indexed by the "palette" parameter.
var Palettes = []Palette{Plasma, Fire, Ocean, Neon}

// PaletteAt returns Palettes[i], falling back to Plasma out of range.
func PaletteAt(i int) Palette {
	if i < 0 || i >= len(Palettes) {
		return Plasma
	}
	return Palettes[i]
}

func rgb(r, g, b float64) render.Color {
	return render.Color{
		R: evaluator.Clamp(r, 0, 1),
		G: evaluator.Clamp(g, 0, 1),
		B: evaluator.Clamp(b, 0, 1),
		A: 1,
	}
}

func Plasma(v, t float64) render.Color {
	return rgb(
		math.Sin(v*6.28+t)*0.5+0.5,
		math.Sin(v*6.28+t+2.09)*0.5+0.5,
		math.Sin(v*6.28+t+4.19)*0.5+0.5,
	)
}

func Fire(v, t float64) render.Color {
	return rgb(
		math.Min(1, (v+math.Sin(t*0.5)*0.2)*2),
		(v-0.5)*2,
		(v-0.8)*5,
	)
}

func Ocean(v, t float64) render.Color {
	return rgb(
		math.Max(0, 0.2-v*0.2),
		(v+math.Sin(t*0.5)*0.1)*0.8,
		0.5+v*0.5,
	)
}

func Neon(v, t float64) render.Color {
	r, b := 2*v, 1.0
	if v > 0.5 {
		r, b = 1, (1-v)*2
	}
	return rgb(r, math.Sin(v*3.14+t)*0.8, b)
}
