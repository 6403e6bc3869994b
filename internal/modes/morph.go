package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

// child continues seg with a new heading, length and thickness.
func child(seg physics.Segment, heading, length, thickness float64) physics.Shoot {
	return physics.Shoot{Origin: seg.To, Heading: heading, Length: length, Depth: seg.Depth - 1, Thickness: thickness}
}

func morphVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(morphRender),
		"v2": engine.Stateless(morphRender),
		"v3": engine.Stateless(morphRender),
	}
}

// morphRender grows a radial bush five levels deep. Each level shrinks
// by 0.8; a branch thinner than 0.2 stops.
func morphRender(f *engine.Frame) {
	n := f.Params.Int("branches", 8)
	length := 50 + f.Params.Get("growth", 20)
	thickness := f.Params.Get("thickness", 2)
	asym := f.Params.Get("asymmetry", 0.5)
	z := zoom(f)
	t := f.Time
	s := f.Surface

	fv := func(seg physics.Segment) float64 { return sample(f.Eval, seg.Length/10, t) }

	var fork physics.Fork
	switch f.Algorithm {
	case "v2":
		stretch := asym * math.Sin(t)
		fork = func(seg physics.Segment) (physics.Shoot, physics.Shoot) {
			d := fv(seg) * math.Pi / 4
			return child(seg, seg.Heading-d, seg.Length*0.8*(1+stretch), seg.Thickness*0.8),
				child(seg, seg.Heading+d, seg.Length*0.8*(1-stretch), seg.Thickness*0.8)
		}
	case "v3":
		fork = func(seg physics.Segment) (physics.Shoot, physics.Shoot) {
			k := math.Abs(fv(seg))
			return child(seg, seg.Heading-math.Pi/4, seg.Length*0.8, seg.Thickness*0.8*(1+k)),
				child(seg, seg.Heading+math.Pi/4, seg.Length*0.8, seg.Thickness*0.8*(1-k))
		}
	default:
		fork = physics.Symmetric(func(seg physics.Segment) float64 { return fv(seg) * math.Pi / 4 }, 0.8, 0.8)
	}

	grower := physics.Grower{MinThickness: 0.2}
	emit := func(seg physics.Segment) {
		s.SetLineWidth(seg.Thickness / z)
		s.SetStroke(hsl(120+fv(seg)*40, 0.8, 0.6, 1))
		line(s, seg.From, seg.To)
	}
	for i := 0; i < n; i++ {
		root := physics.Shoot{Heading: float64(i) / float64(n) * tau, Length: length, Depth: 5, Thickness: thickness}
		grower.Grow(root, fork, emit)
	}
}
