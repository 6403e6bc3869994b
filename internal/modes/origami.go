package modes

import (
	"math"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

// strip is a chain of equal segments whose fold angles relax toward the
// target given by f.
type strip struct {
	angles []float64
	points []physics.Vec2
}

func origamiVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.VariantFunc[*strip]{InitFn: stripInit, RenderFn: origamiStrip},
		"v1": engine.Stateless(origamiRadial),
		"v2": engine.Stateless(origamiBranched),
	}
}

func stripInit(ctx engine.InitContext) *strip {
	n := max(ctx.Params.Int("segments", 40), 0)
	return &strip{angles: make([]float64, n), points: make([]physics.Vec2, n)}
}

func foldPen(f *engine.Frame) {
	s := f.Surface
	s.SetStroke(hsl(f.Time*50, 0.8, 0.7, 1))
	s.SetLineWidth(2 / zoom(f))
}

func origamiStrip(f *engine.Frame, st *strip) {
	n := len(st.points)
	if n == 0 {
		return
	}
	strength := f.Params.Get("foldStrength", 1)
	inertia := f.Params.Get("foldInertia", 0.95)
	w, _ := view(f)
	seg := w * 0.8 / float64(n)

	st.points[0] = physics.V(-w*0.4, 0)
	heading := 0.0
	for i := 1; i < n; i++ {
		target := sample(f.Eval, float64(i)/float64(n), f.Time) * math.Pi * strength
		st.angles[i] = st.angles[i]*inertia + target*(1-inertia)
		heading += st.angles[i]
		st.points[i] = st.points[i-1].Add(physics.Polar(seg, heading))
	}
	foldPen(f)
	polyline(f.Surface, st.points)
}

// origamiRadial folds each arm a little further at every joint.
func origamiRadial(f *engine.Frame) {
	arms := max(f.Params.Int("arms", 8), 0)
	n := f.Params.Int("segments", 20)
	if n <= 0 {
		return
	}
	strength := f.Params.Get("foldStrength", 2)
	w, h := view(f)
	seg := math.Min(w, h) * 0.4 / float64(n)
	foldPen(f)

	pts := make([]physics.Vec2, 0, n)
	for i := 0; i < arms; i++ {
		heading := float64(i) / float64(arms) * tau
		pts = append(pts[:0], physics.Vec2{})
		for j := 1; j < n; j++ {
			heading += sample(f.Eval, float64(j)/float64(n), f.Time+float64(i)) * math.Pi * 0.1 * strength
			pts = append(pts, pts[j-1].Add(physics.Polar(seg, heading)))
		}
		polyline(f.Surface, pts)
	}
}

// origamiBranched grows a binary tree up from below the origin. Each level
// turns by f(depth) times the branch angle.
func origamiBranched(f *engine.Frame) {
	spread := f.Params.Get("branchAngle", 0.8)
	root := physics.Shoot{
		Origin:  physics.V(0, 150),
		Heading: -math.Pi / 2,
		Length:  40,
		Depth:   f.Params.Int("depth", 4),
	}
	fork := physics.Symmetric(func(seg physics.Segment) float64 {
		return sample(f.Eval, float64(seg.Depth), f.Time) * spread
	}, 0.8, 1)
	foldPen(f)
	var g physics.Grower
	g.Grow(root, fork, func(seg physics.Segment) { line(f.Surface, seg.From, seg.To) })
}
