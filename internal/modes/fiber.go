package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

const ribbonWidth = 10

func fiberVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(fiberPoints),
		"v1": engine.Stateless(fiberStrip),
		"v2": engine.Stateless(fiberRibbon),
	}
}

// fiberPoints wraps the graph of f around the x axis and tilts it by the
// camera's x rotation.
func fiberPoints(f *engine.Frame) {
	n := max(f.Params.Int("points", 200), 0)
	amp := f.Params.Get("amplitude", 40)
	r := 1.5 / zoom(f)
	s := f.Surface
	for i := 0; i < n; i++ {
		xn := (float64(i)/float64(n) - 0.5) * 2
		x := xn * 150
		fv := sample(f.Eval, xn, f.Time) * amp
		angle := x * 0.05
		tilt := fv*math.Sin(angle)*0.01 + f.Rotation.X
		s.SetFill(hsl(float64(i)*360/float64(n)+f.Time*50, 0.7, 0.6, 1))
		dot(s, physics.V(x, fv*math.Cos(angle)*math.Cos(tilt)), r)
	}
}

// fiberAt returns the twisted height of f at x and the tilt of that point
// out of the plane.
func fiberAt(f *engine.Frame, x, amp, twist float64) (y, tilt float64) {
	fv := sample(f.Eval, x/50, f.Time) * amp
	angle := x * 0.05 * twist
	return fv * math.Cos(angle), fv * math.Sin(angle) * 0.01
}

func fiberStrip(f *engine.Frame) {
	amp := f.Params.Get("amplitude", 40)
	twist := f.Params.Get("twist", 5)
	pts := make([]physics.Vec2, 0, 201)
	for i := -100; i <= 100; i++ {
		x := float64(i) * 3
		y, _ := fiberAt(f, x, amp, twist)
		pts = append(pts, physics.V(x, y))
	}
	s := f.Surface
	s.SetStroke(hsl(f.Time*50, 0.7, 0.6, 1))
	s.SetLineWidth(2 / zoom(f))
	polyline(s, pts)
}

// fiberRibbon draws the twisted curve as a band whose apparent width
// follows the tilt at each step.
func fiberRibbon(f *engine.Frame) {
	amp := f.Params.Get("amplitude", 30)
	twist := f.Params.Get("twist", 2)
	s := f.Surface
	for i := -100; i < 100; i++ {
		x1, x2 := float64(i)*3, float64(i+1)*3
		y1, tilt := fiberAt(f, x1, amp, twist)
		y2, _ := fiberAt(f, x2, amp, twist)
		tilt += f.Rotation.X
		s.SetStroke(hsl(float64(i)*2+f.Time*50, 0.7, 0.6, 1))
		s.SetLineWidth(math.Abs(ribbonWidth * math.Cos(tilt)))
		line(s, physics.V(x1, y1*math.Cos(tilt)), physics.V(x2, y2))
	}
}
