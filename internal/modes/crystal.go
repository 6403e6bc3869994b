package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

// limitedSpan is the half extent, in cells, of the fixed v3 lattice.
const limitedSpan = 8

func crystalVariants() map[string]engine.Variant {
	v := engine.Stateless(crystalRender)
	return map[string]engine.Variant{"v0": v, "v1": v, "v2": v, "v3": v}
}

// crystalRender visits a square lattice around the origin and lets f,
// sampled at each site's x with the site's y as a time offset, displace,
// resize or rotate the site.
func crystalRender(f *engine.Frame) {
	g := f.Params.Get("gridSize", 30)
	if !(g > 0) {
		return
	}
	z := zoom(f)
	t := f.Time
	s := f.Surface

	span := limitedSpan
	if f.Algorithm != "v3" {
		span = int(math.Max(f.Bounds.W, f.Bounds.H) / g / 2 / z)
	}
	deform := f.Params.Get("deformation", 5)
	size := f.Params.Get("sizeFactor", 8)
	rotation := f.Params.Get("rotationFactor", 1.57)
	s.SetLineWidth(2 / z)

	for i := -span; i <= span; i++ {
		for j := -span; j <= span; j++ {
			site := physics.V(float64(i)*g, float64(j)*g)
			fv := sample(f.Eval, site.X/100, t+site.Y/100)
			hue := 270 + float64(i+j)*10

			switch f.Algorithm {
			case "v1":
				s.SetFill(hsl(hue+fv*20, 0.6, 0.7, 0.9))
				dot(s, site, math.Abs(fv)*size/z)
			case "v2":
				arm := physics.Polar(g*0.4, fv*rotation)
				s.SetStroke(hsl(hue+fv*20, 0.6, 0.7, 0.9))
				line(s, site.Sub(arm), site.Add(arm))
			default:
				shift := physics.V(math.Sin(t+float64(j)), math.Cos(t+float64(i))).Scale(fv * deform)
				s.SetFill(hsl(hue, 0.6, 0.7, 0.9))
				dot(s, site.Add(shift), 2/z)
			}
		}
	}
}
