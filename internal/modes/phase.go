package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
)

const (
	portraitTrail = 20
	portraitDt    = 0.05
	kuramotoDt    = 0.016 * 5
)

type phaseState struct {
	rng       *rand.Rand
	particles []physics.Particle
	phases    []float64
}

func phaseVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(phaseOrbits),
		"v1": engine.Stateless(phaseLissajous),
		"v2": engine.VariantFunc[*phaseState]{InitFn: phaseInit, RenderFn: phasePortrait},
		"v3": engine.VariantFunc[*phaseState]{InitFn: phaseInit, RenderFn: phaseKuramoto},
	}
}

func phaseInit(ctx engine.InitContext) *phaseState {
	st := &phaseState{rng: physics.NewRNG(ctx.Seed)}
	switch ctx.Algorithm {
	case "v2":
		st.particles = physics.NewParticles(ctx.Params.Int("particles", 100),
			physics.View(ctx.Bounds.W, ctx.Bounds.H), portraitTrail, st.rng)
	case "v3":
		st.phases = make([]float64, max(ctx.Params.Int("oscillators", 30), 0))
		for i := range st.phases {
			st.phases[i] = st.rng.Float64() * tau
		}
	}
	return st
}

// phaseOrbits places particles on a rotating circle whose radius f
// modulates by angle.
func phaseOrbits(f *engine.Frame) {
	n := max(f.Params.Int("particles", 20), 0)
	base := f.Params.Get("radius", 80)
	r := 4 / zoom(f)
	s := f.Surface
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*tau + f.Time*0.5
		radius := base + sample(f.Eval, angle/math.Pi-1, f.Time)*30
		s.SetFill(hsl(320+float64(i)*360/float64(n), 0.9, 0.65, 0.8))
		dot(s, physics.Polar(radius, angle), r)
	}
}

// phaseLissajous draws a grid of Lissajous figures whose vertical
// frequency is detuned by f at the cell's x.
func phaseLissajous(f *engine.Frame) {
	n := f.Params.Int("gridSize", 5)
	if n < 2 {
		return
	}
	freqX := f.Params.Get("baseFreq", 2)
	z := zoom(f)
	amp := f.Params.Get("amplitude", 40) / z
	t := f.Time
	s := f.Surface
	s.SetLineWidth(1.5 / z)

	pts := make([]physics.Vec2, 0, 42)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cx := (float64(i)/float64(n-1) - 0.5) * f.Bounds.W * 0.8 / z
			cy := (float64(j)/float64(n-1) - 0.5) * f.Bounds.H * 0.8 / z
			fv := sample(f.Eval, cx/f.Bounds.W, t)
			freqY := freqX + fv

			pts = pts[:0]
			for angle := 0.0; angle <= math.Pi*2.05; angle += 0.05 {
				pts = append(pts, physics.V(
					cx+math.Sin(angle*freqX+t)*amp,
					cy+math.Cos(angle*freqY+t)*amp,
				))
			}
			s.SetStroke(hsl(180+fv*100, 0.8, 0.7, 0.8))
			polyline(s, pts)
		}
	}
}

// phasePortrait integrates damped oscillators pushed radially by f and
// draws each with its recent trail.
func phasePortrait(f *engine.Frame, st *phaseState) {
	stiffness := f.Params.Get("stiffness", 1) * 0.01
	damping := f.Params.Get("damping", 0.1)
	force := f.Params.Get("force", 1) * 10
	w, h := view(f)
	limit := math.Max(w, h) / 1.5
	respawn := physics.Advection{Bounds: physics.View(w, h).Grow(0.5)}
	z := zoom(f)
	s := f.Surface

	for i := range st.particles {
		p := &st.particles[i]
		push := physics.Polar(sample(f.Eval, p.Pos.Len()/100, f.Time)*force, math.Atan2(p.Pos.Y, p.Pos.X))
		acc := p.Pos.Scale(-stiffness).Sub(p.Vel.Scale(damping)).Add(push).Scale(portraitDt)
		if acc.Finite() {
			p.Vel = p.Vel.Add(acc)
			p.Pos = p.Pos.Add(p.Vel)
		}
		p.Trail.Push(p.Pos)
		if p.Pos.Len() > limit || !p.Pos.Finite() {
			respawn.Respawn(p, st.rng)
		}
	}

	s.SetLineWidth(1 / z)
	for _, p := range st.particles {
		hue := 200 + p.Vel.Len()*2
		s.SetStroke(hsl(hue, 0.8, 0.7, 0.5))
		polyline(s, p.Trail.Points)
		s.SetFill(hsl(hue, 0.8, 0.7, 1))
		dot(s, p.Pos, 2/z)
	}
}

// phaseKuramoto advances coupled phase oscillators on a ring. Natural
// frequencies come from f; oscillators in near agreement are linked.
func phaseKuramoto(f *engine.Frame, st *phaseState) {
	n := len(st.phases)
	if n == 0 {
		return
	}
	coupling := f.Params.Get("coupling", 0.5) / float64(n)
	freqMod := f.Params.Get("freqMod", 1)
	z := zoom(f)
	radius := math.Min(f.Bounds.W, f.Bounds.H) * 0.35 / z
	s := f.Surface

	next := make([]float64, n)
	for i, phi := range st.phases {
		natural := 1 + sample(f.Eval, float64(i)/float64(n), f.Time)*freqMod
		pull := 0.0
		for j, other := range st.phases {
			if j != i {
				pull += math.Sin(other - phi)
			}
		}
		next[i] = math.Mod(phi+(natural+coupling*pull)*kuramotoDt, tau)
	}
	st.phases = next

	pos := func(i int) physics.Vec2 { return physics.Polar(radius, float64(i)/float64(n)*tau) }
	s.SetLineWidth(1 / z)
	for i, phi := range st.phases {
		hue := phi / tau * 360
		s.SetFill(hsl(hue, 0.9, 0.7, 1))
		dot(s, pos(i), 5/z)
		s.SetStroke(hsl(hue, 0.9, 0.7, 0.2))
		for j := i + 1; j < n; j++ {
			d := math.Abs(phi - st.phases[j])
			if math.Min(d, tau-d) < 0.5 {
				line(s, pos(i), pos(j))
			}
		}
	}
}
