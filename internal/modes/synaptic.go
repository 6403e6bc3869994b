package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

// mirrors lists the reflections drawn for each symmetry setting:
// 1 mirrors across the x axis, 2 across the y axis, 3 both and the origin.
var mirrors = [][][2]float64{
	1: {{1, -1}},
	2: {{-1, 1}},
	3: {{1, -1}, {-1, 1}, {-1, -1}},
}

func synapticVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(synapticRender),
		"v1": engine.Stateless(synapticRender),
		"v2": engine.Stateless(synapticRender),
	}
}

// synapticRender grows a radial tree and highlights every branch tip that
// lands near an earlier one. Mirrored copies share the frame's detector,
// so their tips synapse with those of every earlier pass.
func synapticRender(f *engine.Frame) {
	p := f.Params
	n := p.Int("branches", 6)
	length := p.Get("growth", 40)
	depth := p.Int("depth", 5)
	thickness := p.Get("thickness", 4)
	asym := p.Get("asymmetry", 0.6)
	z := zoom(f)
	t := f.Time
	s := f.Surface

	turn := func(seg physics.Segment) float64 { return sample(f.Eval, float64(seg.Depth), t) }

	var fork physics.Fork
	switch f.Algorithm {
	case "v1":
		fork = func(seg physics.Segment) (physics.Shoot, physics.Shoot) {
			fv := turn(seg)
			d := fv * math.Pi / 4
			return child(seg, seg.Heading-d, seg.Length*0.85*(1+asym*fv), seg.Thickness*0.9),
				child(seg, seg.Heading+d, seg.Length*0.85*(1-asym*fv), seg.Thickness*0.9)
		}
	case "v2":
		fork = func(seg physics.Segment) (physics.Shoot, physics.Shoot) {
			fv := turn(seg)
			d, k := fv*math.Pi/4, math.Abs(fv)
			return child(seg, seg.Heading-d, seg.Length*0.85, seg.Thickness*0.9*(1+k)),
				child(seg, seg.Heading+d, seg.Length*0.85, seg.Thickness*0.9*(1-k))
		}
	default:
		fork = physics.Symmetric(func(seg physics.Segment) float64 { return turn(seg) * math.Pi / 4 }, 0.85, 0.9)
	}

	detector := &physics.SynapseDetector{Radius: p.Get("synapseRadius", 15)}
	var grower physics.Grower
	emit := func(seg physics.Segment) {
		if detector.Observe(seg.To) {
			s.SetStroke(hsl(t*150, 0.9, 0.8, 1))
			s.SetLineWidth((seg.Thickness + 1) / z)
		} else {
			s.SetStroke(hsl(200+sample(f.Eval, seg.Length/10, t)*50, 0.8, 0.6, 1))
			s.SetLineWidth(seg.Thickness / z)
		}
		line(s, seg.From, seg.To)
	}
	pass := func() {
		for i := 0; i < n; i++ {
			root := physics.Shoot{Heading: float64(i) / float64(n) * tau, Length: length, Depth: depth, Thickness: thickness}
			grower.Grow(root, fork, emit)
		}
	}

	pass()
	if sym := p.Int("symmetry", 0); sym > 0 && sym < len(mirrors) {
		for _, m := range mirrors[sym] {
			s.Save()
			s.Scale(m[0], m[1])
			pass()
			s.Restore()
		}
	}
}
