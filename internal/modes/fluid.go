package modes

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

// wellSamples is the resolution of the extremum scan along the x axis.
const wellSamples = 64

type well struct {
	Pos  physics.Vec2
	Mass float64
}

type fluidState struct {
	rng       *rand.Rand
	particles []physics.Particle
	lattice   [][]physics.Body
	wells     []well
}

var fluidTrail = map[string]int{"v0": 10, "v1": 15, "v2": 5, "v4": 15}

func fluidInit(ctx engine.InitContext) *fluidState {
	st := &fluidState{rng: physics.NewRNG(ctx.Seed)}
	p := ctx.Params
	bounds := physics.View(ctx.Bounds.W, ctx.Bounds.H)

	switch ctx.Algorithm {
	case "v3":
		d := max(p.Int("gridDensity", 20), 2)
		st.lattice = make([][]physics.Body, d)
		for i := range st.lattice {
			row := make([]physics.Body, d)
			for j := range row {
				x := (float64(i)/float64(d-1) - 0.5) * ctx.Bounds.W * 1.2
				y := (float64(j)/float64(d-1) - 0.5) * ctx.Bounds.H * 1.2
				row[j] = physics.NewBody(physics.V(x, y))
			}
			st.lattice[i] = row
		}
	case "v5":
		st.particles = physics.NewParticles(p.Int("particleCount", 150), bounds, p.Int("streamlineLength", 40), st.rng)
	case "v4":
		st.particles = physics.NewParticles(p.Int("particleCount", 150), bounds, p.Int("trailLength", 15), st.rng)
	default:
		st.particles = physics.NewParticles(p.Int("particleCount", 200), bounds, p.Int("trailLength", fluidTrail[ctx.Algorithm]), st.rng)
		for i := range st.particles {
			st.particles[i].Life = st.rng.Float64() * 200
		}
	}
	return st
}

func fluidVariant(draw func(*engine.Frame, *fluidState)) engine.Variant {
	return engine.VariantFunc[*fluidState]{
		InitFn: fluidInit,
		RenderFn: func(f *engine.Frame, st *fluidState) {
			withBlend(f.Surface, render.BlendAdditive, func() { draw(f, st) })
		},
	}
}

func fluidVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": fluidVariant(fluidClassic),
		"v1": fluidVariant(fluidVortex),
		"v2": fluidVariant(fluidWells),
		"v3": fluidVariant(fluidLattice),
		"v4": fluidVariant(fluidCurl),
		"v5": fluidVariant(fluidPortrait),
	}
}

// drawParticle strokes the trail, or a dot when there is no trail yet.
func drawParticle(s render.Surface, p *physics.Particle, c render.Color, z float64, glow bool) {
	if glow {
		s.SetShadow(8/z, c)
		defer s.SetShadow(0, c)
	}
	if p.Trail.Len() > 1 {
		s.SetStroke(c.WithAlpha(0.5))
		s.SetLineWidth(1 / z)
		polyline(s, p.Trail.Points)
		return
	}
	s.SetFill(c)
	dot(s, p.Pos, 1/z)
}

func fluidClassic(f *engine.Frame, st *fluidState) {
	w, h := view(f)
	z := zoom(f)
	speed := f.Params.Get("flowSpeed", 1.5)
	noise := f.Params.Get("noise", 0.5) * 2
	glow := f.Params.Get("glow", 0) > 0
	adv := physics.Advection{Bounds: physics.View(w, h), Life: 200}

	for i := range st.particles {
		p := &st.particles[i]
		v := physics.SlopeVelocity(f.Eval, p.Pos, f.Time, speed)
		v = v.Add(physics.V((st.rng.Float64()-0.5)*noise, (st.rng.Float64()-0.5)*noise))
		adv.Move(p, v, st.rng)
		drawParticle(f.Surface, p, hsl(p.Pos.X/w*100+f.Time*50, 0.7, 0.6, 0.8), z, glow)
	}
}

func fluidVortex(f *engine.Frame, st *fluidState) {
	w, h := view(f)
	z := zoom(f)
	strength := f.Params.Get("vortexStrength", 5)
	radial := f.Params.Get("radialForce", 1)
	glow := f.Params.Get("glow", 0) > 0
	reach := math.Max(w, h) / 2
	adv := physics.Advection{Bounds: physics.View(w, h)}

	for i := range st.particles {
		p := &st.particles[i]
		d := p.Pos.Len()
		if d == 0 {
			d = 1
		}
		angle := math.Atan2(p.Pos.Y, p.Pos.X)
		tangential := strength * sample(f.Eval, d/100, f.Time) / d
		outward := radial * (1 - d/reach)
		v := physics.Polar(tangential, angle+math.Pi/2).Add(physics.Polar(outward, angle))
		adv.Move(p, v, st.rng)
		drawParticle(f.Surface, p, hsl(d+f.Time*50, 0.7, 0.6, 0.8), z, glow)
	}
}

// detectWells scans f along the x axis and turns local extrema into point
// masses whose mass is the signed value of f there. The n heaviest by
// absolute mass are kept.
func detectWells(fn evaluator.Func, t, w float64, n int, out []well) []well {
	out = out[:0]
	if n <= 0 {
		return out
	}
	var xs, vs [wellSamples]float64
	for k := range xs {
		xs[k] = (float64(k)/(wellSamples-1) - 0.5) * w * 0.8
		vs[k] = sample(fn, xs[k]/100, t)
	}
	for k := 1; k < wellSamples-1; k++ {
		v := vs[k]
		peak := v > vs[k-1] && v >= vs[k+1]
		trough := v < vs[k-1] && v <= vs[k+1]
		if (peak || trough) && v != 0 {
			out = append(out, well{Pos: physics.V(xs[k], 0), Mass: v})
		}
	}
	slices.SortStableFunc(out, func(a, b well) int {
		return cmp.Compare(math.Abs(b.Mass), math.Abs(a.Mass))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func fluidWells(f *engine.Frame, st *fluidState) {
	w, h := view(f)
	z := zoom(f)
	g := f.Params.Get("gravityStrength", 50) / 1000
	adv := physics.Advection{Bounds: physics.View(w, h)}
	s := f.Surface

	st.wells = detectWells(f.Eval, f.Time, w, f.Params.Int("numWells", 5), st.wells)

	for i := range st.particles {
		p := &st.particles[i]
		var force physics.Vec2
		for _, wl := range st.wells {
			d := wl.Pos.Sub(p.Pos)
			distSq := d.X*d.X + d.Y*d.Y + 100
			force = force.Add(d.Scale(g * wl.Mass / distSq))
		}
		p.Vel = p.Vel.Add(force).Scale(0.95)
		adv.Move(p, p.Vel, st.rng)
		drawParticle(s, p, hsl(p.Pos.X/w*100+f.Time*50, 0.7, 0.6, 0.8), z, false)
	}

	s.SetLineWidth(1 / z)
	for _, wl := range st.wells {
		hue := 60.0
		if wl.Mass < 0 {
			hue = 240
		}
		s.SetStroke(hsl(hue, 0.8, 0.6, 0.4))
		ring(s, wl.Pos, (4+math.Abs(wl.Mass)*4)/z)
	}
}

func fluidLattice(f *engine.Frame, st *fluidState) {
	z := zoom(f)
	k := f.Params.Get("deformationScale", 1.5)
	spring := physics.Spring{K: 0.1, Damping: f.Params.Get("damping", 0.92)}
	s := f.Surface

	for _, row := range st.lattice {
		for j := range row {
			b := &row[j]
			gx, gy := evaluator.Gradient2D(f.Eval, b.Pos.X, b.Pos.Y, f.Time, 100)
			spring.Step(b, physics.V(gx*k, gy*k))
		}
	}

	s.SetLineWidth(1 / z)
	d := len(st.lattice)
	for i := 0; i < d-1; i++ {
		for j := 0; j < d-1; j++ {
			p1 := st.lattice[i][j]
			s.SetStroke(hsl(180+p1.Vel.Len()*50, 0.8, 0.7, 0.7))
			line(s, p1.Pos, st.lattice[i+1][j].Pos)
			line(s, p1.Pos, st.lattice[i][j+1].Pos)
		}
	}
}

func fluidCurl(f *engine.Frame, st *fluidState) {
	const cells = 30
	w, h := view(f)
	z := zoom(f)
	field := physics.VectorField{F: f.Eval, T: f.Time, K: f.Params.Get("fieldStrength", 2)}
	glow := f.Params.Get("glow", 0) > 0
	s := f.Surface

	cw, ch := w/cells, h/cells
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			x := (float64(i)/cells - 0.5) * w
			y := (float64(j)/cells - 0.5) * h
			curl, div, ok := field.CurlDivergence(x/w, y/h)
			if !ok {
				continue
			}
			r, g, b, a := physics.FieldShade(curl, div)
			s.SetFill(render.RGB255(r, g, b, a))
			s.FillRect(x-cw/2, y-ch/2, cw, ch)
		}
	}

	adv := physics.Advection{Bounds: physics.View(w, h)}
	for i := range st.particles {
		p := &st.particles[i]
		adv.Move(p, field.At(p.Pos.X/w, p.Pos.Y/h), st.rng)

		c := hsl(p.Pos.X/w*100+f.Time*50, 0.8, 0.7, 1)
		if glow {
			s.SetShadow(10/z, c)
		}
		if p.Trail.Len() > 1 {
			s.SetStroke(c.WithAlpha(0.5))
			s.SetLineWidth(1 / z)
			polyline(s, p.Trail.Points)
		}
		s.SetFill(c)
		dot(s, p.Pos, 1.5/z)
		if glow {
			s.SetShadow(0, c)
		}
	}
}

func fluidPortrait(f *engine.Frame, st *fluidState) {
	w, h := view(f)
	z := zoom(f)
	k := f.Params.Get("fieldStrength", 2) * 5
	colorize := f.Params.Get("colorizeSpeed", 0) > 0
	adv := physics.Advection{
		Bounds:  physics.Rect{HalfW: w / 1.8, HalfH: h / 1.8},
		SpawnIn: physics.View(w, h),
	}
	s := f.Surface

	for i := range st.particles {
		p := &st.particles[i]
		adv.Move(p, physics.GradientVelocity(f.Eval, p.Pos, f.Time, 100, k), st.rng)
	}

	s.SetLineWidth(1.5 / z)
	for i := range st.particles {
		p := &st.particles[i]
		hue := 200.0
		if n := p.Trail.Len(); colorize && n > 1 {
			hue += p.Trail.Points[n-1].Dist(p.Trail.Points[n-2]) * 10
		}
		s.SetStroke(hsl(hue, 0.8, 0.7, 0.4))
		polyline(s, p.Trail.Points)
	}
}
