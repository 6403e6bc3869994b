package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

const tau = 2 * math.Pi

// sample evaluates f at (x, t) with a = b = c = 1. Non-finite results
// read as 0.
func sample(f evaluator.Func, x, t float64) float64 {
	return evaluator.Or(f(x, t, 1, 1, 1), 0)
}

// zoom returns the frame zoom, treating an unset zoom as 1.
func zoom(f *engine.Frame) float64 {
	if f.Zoom <= 0 || math.IsNaN(f.Zoom) {
		return 1
	}
	return f.Zoom
}

// view returns the visible scene extent, the device bounds divided by zoom.
func view(f *engine.Frame) (w, h float64) {
	z := zoom(f)
	return f.Bounds.W / z, f.Bounds.H / z
}

func hsl(h, s, l, a float64) render.Color { return render.HSL(h, s, l, a) }

func dot(s render.Surface, p physics.Vec2, r float64) {
	if p.Finite() {
		s.FillArc(p.X, p.Y, r, 0, tau)
	}
}

func ring(s render.Surface, p physics.Vec2, r float64) {
	if p.Finite() {
		s.Arc(p.X, p.Y, r, 0, tau)
	}
}

func line(s render.Surface, a, b physics.Vec2) {
	if a.Finite() && b.Finite() {
		s.Line(a.X, a.Y, b.X, b.Y)
	}
}

// polyline strokes consecutive points. A non-finite point breaks the path.
func polyline(s render.Surface, pts []physics.Vec2) {
	for i := 1; i < len(pts); i++ {
		line(s, pts[i-1], pts[i])
	}
}

// withBlend runs draw with b active and restores the previous style.
func withBlend(s render.Surface, b render.Blend, draw func()) {
	s.Save()
	defer s.Restore()
	s.SetBlend(b)
	draw()
}

// rngState is the state of variants whose only memory is their random
// source.
type rngState struct{ rng *rand.Rand }

func newRNG(ctx engine.InitContext) *rngState {
	return &rngState{rng: physics.NewRNG(ctx.Seed)}
}
