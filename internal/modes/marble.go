package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/physics"
)

// marbleHeight is the vertical scale of the rolling curve.
const marbleHeight = 50

type marbleState struct {
	rng     *rand.Rand
	marbles []physics.Particle
}

func marbleVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"default": engine.VariantFunc[*marbleState]{InitFn: marbleInit, RenderFn: marbleRender},
	}
}

func marbleInit(ctx engine.InitContext) *marbleState {
	st := &marbleState{rng: physics.NewRNG(ctx.Seed)}
	st.marbles = make([]physics.Particle, max(ctx.Params.Int("marbles", 20), 0))
	for i := range st.marbles {
		st.drop(&st.marbles[i], ctx.Bounds.W)
	}
	return st
}

// drop puts m back somewhere on the middle 80% of a curve w wide.
func (st *marbleState) drop(m *physics.Particle, w float64) {
	m.Pos = physics.V((st.rng.Float64()-0.5)*w*0.8, 0)
	m.Vel = physics.V(st.rng.Float64()-0.5, 0)
}

// marbleRender rolls marbles along y = 50·f(x/100) under gravity.
func marbleRender(f *engine.Frame, st *marbleState) {
	gravity := f.Params.Get("gravity", 0.2)
	keep := 1 - f.Params.Get("damping", 0.05)
	w, _ := view(f)
	z := zoom(f)
	t := f.Time
	s := f.Surface
	height := func(x float64) float64 { return sample(f.Eval, x/100, t) * marbleHeight }

	var curve []physics.Vec2
	for x := -w / 2; x <= w/2; x += 5 {
		curve = append(curve, physics.V(x, height(x)))
	}
	s.SetStroke(hsl(200, 0.5, 0.5, 0.5))
	s.SetLineWidth(1 / z)
	polyline(s, curve)

	n := float64(len(st.marbles))
	for i := range st.marbles {
		m := &st.marbles[i]
		angle := math.Atan(evaluator.Or(evaluator.Derivative(f.Eval, m.Pos.X/100, t, 1, 1, 1), 0))
		m.Vel.X = (m.Vel.X + gravity*math.Sin(angle)*math.Cos(angle)) * keep
		m.Pos.X += m.Vel.X
		if !(math.Abs(m.Pos.X) <= w/2) {
			st.drop(m, w)
		}
		m.Pos.Y = height(m.Pos.X)
		s.SetFill(hsl(float64(i)*360/n, 0.8, 0.7, 1))
		dot(s, m.Pos, 4/z)
	}
}
