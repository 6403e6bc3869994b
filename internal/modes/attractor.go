package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/dynamo"
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/integrators"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

// substeps is the number of integration steps per frame.
const substeps = 5

type attractorState struct {
	rng     *rand.Rand
	orbit   *physics.Orbit
	rossler *physics.Rossler
	points  []physics.Vec2
}

func attractorVariants() map[string]engine.Variant {
	v := func(draw func(*engine.Frame, *attractorState)) engine.Variant {
		return engine.VariantFunc[*attractorState]{
			InitFn: attractorInit,
			RenderFn: func(f *engine.Frame, st *attractorState) {
				withBlend(f.Surface, render.BlendAdditive, func() { draw(f, st) })
			},
		}
	}
	return map[string]engine.Variant{
		"v0": v(attractorLorenz),
		"v1": v(attractorRossler),
		"v2": v(attractorDeJong),
	}
}

// configure copies the coefficients present in p into sys.
func configure(sys dynamo.Configurable, p engine.Params) {
	for name := range sys.GetParams() {
		if v, ok := p[name]; ok {
			_ = sys.SetParam(name, v)
		}
	}
}

func attractorInit(ctx engine.InitContext) *attractorState {
	st := &attractorState{rng: physics.NewRNG(ctx.Seed)}
	start := dynamo.State{0.1, 0, 0}
	trail := ctx.Params.Int("points", 1000)

	switch ctx.Algorithm {
	case "v2":
		box := physics.Rect{HalfW: 2, HalfH: 2}
		st.points = make([]physics.Vec2, max(ctx.Params.Int("points", 2000), 0))
		for i := range st.points {
			st.points[i] = box.Random(st.rng)
		}
	case "v1":
		st.rossler = physics.NewRossler()
		configure(st.rossler, ctx.Params)
		st.orbit = physics.NewOrbit(st.rossler, integrators.NewEuler(), start, trail)
	default:
		sys := physics.NewLorenz()
		configure(sys, ctx.Params)
		st.orbit = physics.NewOrbit(sys, integrators.NewEuler(), start, trail)
	}
	return st
}

// attractorLorenz lets f stretch or shrink the time step around z.
func attractorLorenz(f *engine.Frame, st *attractorState) {
	if st.orbit == nil {
		return
	}
	// A diverging orbit restarts itself; the frame goes on with the new trail.
	_ = st.orbit.Advance(substeps, func(x dynamo.State) float64 {
		return 0.01 * (1 + sample(f.Eval, x[2]/30, f.Time)*0.2)
	})
	drawOrbit(f, st.orbit, f.Params.Get("scale", 10))
}

// attractorRossler lets f shift the c coefficient around x.
func attractorRossler(f *engine.Frame, st *attractorState) {
	if st.orbit == nil || st.rossler == nil {
		return
	}
	base := f.Params.Get("c", 5.7)
	_ = st.orbit.Advance(substeps, func(x dynamo.State) float64 {
		st.rossler.C = base + sample(f.Eval, x[0]/10, f.Time)*2
		return 0.02
	})
	drawOrbit(f, st.orbit, f.Params.Get("scale", 20))
}

// drawOrbit strokes the projected trail, fading in from the oldest point
// and shifting hue by 60° toward the head.
func drawOrbit(f *engine.Frame, o *physics.Orbit, scale float64) {
	pts := o.Trail.Points
	if len(pts) < 2 {
		return
	}
	s := f.Surface
	s.SetLineWidth(1 / zoom(f))
	prev := physics.Project(pts[0], scale, f.Rotation.X)
	for i := 1; i < len(pts); i++ {
		cur := physics.Project(pts[i], scale, f.Rotation.X)
		k := float64(i) / float64(len(pts)-1)
		s.SetStroke(hsl(f.Time*50+60*k, 0.9, 0.7, 0.1+0.7*k))
		line(s, prev, cur)
		prev = cur
	}
}

func attractorDeJong(f *engine.Frame, st *attractorState) {
	scale := f.Params.Get("scale", 150)
	m := physics.DeJong{
		A: f.Params.Get("a", 1.4) + sample(f.Eval, 0, f.Time)*0.1,
		B: f.Params.Get("b", -2.3),
		C: f.Params.Get("c", 2.4),
		D: f.Params.Get("d", -2.1),
	}
	r := 0.5 / zoom(f)
	s := f.Surface
	for i, p := range st.points {
		p = m.Map(p)
		st.points[i] = p
		s.SetFill(hsl(math.Hypot(p.X, p.Y)*20+f.Time*50, 0.8, 0.7, 0.2))
		dot(s, p.Scale(scale), r)
	}
}
