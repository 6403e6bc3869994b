package physics

import (
	"math"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

// VectorField reads f as a planar field:
// V(x, y) = (f(x, y, t, 1, 1)·K, f(y, x, t+0.5, 1, 1)·K).
type VectorField struct {
	F evaluator.Func
	T float64
	K float64
}

func (v VectorField) Vx(x, y float64) float64 { return v.F(x, y, v.T, 1, 1) * v.K }
func (v VectorField) Vy(x, y float64) float64 { return v.F(y, x, v.T+0.5, 1, 1) * v.K }

// At samples the field. Non-finite components are zeroed.
func (v VectorField) At(x, y float64) Vec2 {
	return Vec2{evaluator.Or(v.Vx(x, y), 0), evaluator.Or(v.Vy(x, y), 0)}
}

// CurlDivergence estimates ∂Vy/∂x − ∂Vx/∂y and ∂Vx/∂x + ∂Vy/∂y with a
// central difference of step evaluator.GradientStep. ok is false when any
// sample was non-finite.
func (v VectorField) CurlDivergence(x, y float64) (curl, div float64, ok bool) {
	h := evaluator.GradientStep
	dvxdy := (v.Vx(x, y+h) - v.Vx(x, y-h)) / (2 * h)
	dvydx := (v.Vy(x+h, y) - v.Vy(x-h, y)) / (2 * h)
	dvxdx := (v.Vx(x+h, y) - v.Vx(x-h, y)) / (2 * h)
	dvydy := (v.Vy(x, y+h) - v.Vy(x, y-h)) / (2 * h)
	curl = dvydx - dvxdy
	div = dvxdx + dvydy
	if !evaluator.Finite(curl) || !evaluator.Finite(div) {
		return 0, 0, false
	}
	return curl, div, true
}

// FieldShade maps curl to a red/blue split and divergence to opacity.
// Channels are in [0, 255], alpha in [0.2, 0.6].
func FieldShade(curl, div float64) (r, g, b, alpha float64) {
	r = evaluator.Clamp(128+curl*200, 0, 255)
	b = evaluator.Clamp(128-curl*200, 0, 255)
	g = evaluator.Clamp(128-math.Abs(curl)*100, 0, 255)
	alpha = 0.2 + evaluator.Clamp(div*0.1, 0, 0.4)
	return r, g, b, alpha
}
