package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

func hyperbolicVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(hyperbolicDepth),
		"v1": engine.Stateless(hyperbolicTwist),
		"v2": engine.Stateless(hyperbolicHalfPlane),
		"v3": engine.Stateless(hyperbolicGrid),
	}
}

// spiral calls visit for each point of a golden-angle spiral filling a
// disc of radius scale.
func spiral(f *engine.Frame, visit func(r, angle float64) physics.Vec2) {
	n := max(f.Params.Int("points", 200), 0)
	scale := f.Params.Get("scale", 100)
	r := 1.5 / zoom(f)
	s := f.Surface
	for i := 0; i < n; i++ {
		p := visit(math.Sqrt(float64(i)/float64(n))*scale, float64(i)*goldenAngle)
		s.SetFill(hsl(float64(i)*0.5+f.Time*20, 0.8, 0.7, 1))
		dot(s, p, r)
	}
}

// hyperbolicDepth lifts each spiral point to height f+1.5 and projects it
// back to the plane.
func hyperbolicDepth(f *engine.Frame) {
	scale := f.Params.Get("scale", 100)
	spiral(f, func(r, angle float64) physics.Vec2 {
		depth := sample(f.Eval, r/scale, f.Time) + 1.5
		return physics.Polar(r, angle).Scale(1 / depth)
	})
}

func hyperbolicTwist(f *engine.Frame) {
	scale := f.Params.Get("scale", 100)
	twist := f.Params.Get("twist", 1)
	spiral(f, func(r, angle float64) physics.Vec2 {
		angle += sample(f.Eval, r/scale, f.Time) * twist
		return physics.Polar(r/1.5, angle)
	})
}

// hyperbolicHalfPlane shrinks grid discs with their height above the
// axis, as in the upper half-plane metric. Points displaced below the
// axis are skipped.
func hyperbolicHalfPlane(f *engine.Frame) {
	g := f.Params.Get("gridSize", 20)
	if !(g > 0) {
		return
	}
	amp := f.Params.Get("amplitude", 50)
	w, h := view(f)
	nx, ny := int(w/g), int(h/g)
	z := zoom(f)
	s := f.Surface
	s.Save()
	defer s.Restore()
	s.Translate(0, -h/3)

	for i := -nx; i <= nx; i++ {
		x := float64(i) * g
		fv := sample(f.Eval, x/100, f.Time)
		s.SetFill(hsl(180+x/f.Bounds.W*180+f.Time*20, 0.8, 0.7, 1))
		for j := 1; j <= ny*2; j++ {
			y := float64(j)*g + fv*amp
			if y <= 0 {
				continue
			}
			dot(s, physics.V(x, -y), g/2/(y/50+1)/z)
		}
	}
}

// hyperbolicGrid warps a polar grid: f of the angle stretches the radius
// and f of the radius turns the spokes.
func hyperbolicGrid(f *engine.Frame) {
	rings := f.Params.Int("rings", 10)
	spokes := f.Params.Int("spokes", 24)
	if rings <= 0 || spokes <= 0 {
		return
	}
	warp := f.Params.Get("warp", 0.2)
	w, h := view(f)
	maxR := math.Min(w, h) / 2 * 0.9
	t := f.Time
	s := f.Surface
	s.SetLineWidth(1 / zoom(f))

	grid := make([][]physics.Vec2, rings+1)
	for i := range grid {
		rn := float64(i) / float64(rings)
		turn := sample(f.Eval, rn*2-1, t+0.5) * warp * math.Pi
		grid[i] = make([]physics.Vec2, spokes)
		for j := range grid[i] {
			an := float64(j) / float64(spokes)
			r := rn * maxR * (1 + sample(f.Eval, an*2-1, t)*warp)
			grid[i][j] = physics.Polar(r, an*tau+turn)
		}
	}

	spoke := make([]physics.Vec2, rings+1)
	for j := 0; j < spokes; j++ {
		for i := range grid {
			spoke[i] = grid[i][j]
		}
		s.SetStroke(hsl(float64(j)/float64(spokes)*360+t*50, 0.8, 0.7, 0.7))
		polyline(s, spoke)
	}
	for i := 1; i <= rings; i++ {
		s.SetStroke(hsl(float64(i)/float64(rings)*180+t*50, 0.8, 0.7, 0.7))
		polyline(s, append(grid[i], grid[i][0]))
	}
}
