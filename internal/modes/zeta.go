package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

// zetaZeros are the imaginary parts of the first nontrivial zeros of the
// Riemann zeta function.
var zetaZeros = [...]float64{
	14.13, 21.02, 25.01, 30.42, 32.93, 37.58, 40.91, 43.32, 48.00, 49.77,
	52.94, 56.44, 59.34, 60.83, 65.11, 67.07, 69.54, 72.06, 75.70, 77.14,
}

var (
	axisColor      = render.Color{R: 1, G: 1, B: 1, A: 0.2}
	potentialColor = render.RGB255(100, 150, 255, 0.6)
)

type scatterer struct {
	x, y, vx, energy float64
}

type zetaState struct {
	rng       *rand.Rand
	particles []scatterer
}

func zetaVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(zetaCloud),
		"v1": engine.Stateless(zetaStrings),
		"v2": engine.VariantFunc[*zetaState]{InitFn: zetaInit, RenderFn: zetaScattering},
		"v3": engine.Stateless(zetaLobes),
	}
}

// zeroCount clamps n to the table size.
func zeroCount(n int) int { return min(max(n, 0), len(zetaZeros)) }

func verticalAxis(f *engine.Frame) {
	_, h := view(f)
	s := f.Surface
	s.SetStroke(axisColor)
	s.SetLineWidth(1 / zoom(f))
	s.Line(0, -h/2, 0, h/2)
}

// zetaCloud mirrors points at the zero heights across the x axis. Later
// repetitions of the table sit progressively higher.
func zetaCloud(f *engine.Frame) {
	verticalAxis(f)
	n := max(f.Params.Int("density", 400), 0)
	spread := f.Params.Get("spread", 5)
	t := f.Time
	s := f.Surface
	for i := 0; i < n; i++ {
		round := float64(i / len(zetaZeros))
		y := zetaZeros[i%len(zetaZeros)]*spread*(1+round*0.5) + math.Sin(t*0.1+float64(i))*10
		x := sample(f.Eval, y/100, t) * 30
		size := 2 + math.Sin(t*2+y*0.1)*1.5
		s.SetFill(hsl(180+math.Mod(y, 180), 0.8, 0.7, 0.8))
		dot(s, physics.V(x, y), size)
		dot(s, physics.V(x, -y), size)
	}
}

// zetaStrings vibrates a string pinned at both screen edges at each zero
// height, with amplitude given by f.
func zetaStrings(f *engine.Frame) {
	verticalAxis(f)
	n := zeroCount(f.Params.Int("numZeros", 20))
	amp := f.Params.Get("amplitude", 80)
	spread := f.Params.Get("spread", 5)
	w, _ := view(f)
	half := w / 2
	s := f.Surface

	var upper, lower []physics.Vec2
	for _, zero := range zetaZeros[:n] {
		y := zero * spread
		a := sample(f.Eval, y/100, f.Time) * amp
		upper, lower = upper[:0], lower[:0]
		for x := -half; x <= half; x += 5 {
			wave := math.Sin((x+half)/(2*half)*math.Pi) * a
			upper = append(upper, physics.V(x, y-wave))
			lower = append(lower, physics.V(x, -y+wave))
		}
		s.SetStroke(hsl(180+y/2, 0.8, 0.7, 0.9))
		polyline(s, upper)
		polyline(s, lower)
	}
}

func zetaInit(ctx engine.InitContext) *zetaState {
	st := &zetaState{rng: physics.NewRNG(ctx.Seed)}
	scale := ctx.Params.Get("energyScale", 1)
	st.particles = make([]scatterer, max(ctx.Params.Int("particles", 50), 0))
	for i := range st.particles {
		st.particles[i] = scatterer{
			x:      -ctx.Bounds.W/2 - st.rng.Float64()*100,
			y:      (st.rng.Float64() - 0.5) * ctx.Bounds.H * 0.8,
			vx:     2 + st.rng.Float64()*2,
			energy: zetaZeros[i%len(zetaZeros)] * scale,
		}
	}
	return st
}

// zetaScattering sends particles at the zero energies across the
// potential f. A particle moving outward reflects where the potential
// exceeds its energy.
func zetaScattering(f *engine.Frame, st *zetaState) {
	amp := f.Params.Get("potentialAmp", 50)
	w, _ := view(f)
	half := w / 2
	z := zoom(f)
	s := f.Surface
	potential := func(x float64) float64 { return sample(f.Eval, x/100, f.Time) * amp }

	var curve []physics.Vec2
	for x := -half; x <= half; x += 5 {
		curve = append(curve, physics.V(x, -potential(x)))
	}
	s.SetStroke(potentialColor)
	s.SetLineWidth(1.5 / z)
	polyline(s, curve)

	for i := range st.particles {
		p := &st.particles[i]
		if p.energy < potential(p.x) && math.Signbit(p.vx) == math.Signbit(p.x) {
			p.vx = -p.vx
		}
		p.x += p.vx
		if p.x > half || p.x < -half*1.5 {
			p.x = -half - st.rng.Float64()*100
			p.vx = math.Abs(p.vx)
		}
		s.SetFill(hsl(200+p.energy*2, 0.8, 0.7, 1))
		dot(s, physics.V(p.x, -p.energy*0.5), 2/z)
	}
}

// zetaLobes draws one closed ring per zero with floor(E/5) lobes rotated
// by f.
func zetaLobes(f *engine.Frame) {
	n := zeroCount(f.Params.Int("numZeros", 8))
	spread := f.Params.Get("spread", 20)
	phaseMod := f.Params.Get("phaseMod", 2)
	z := zoom(f)
	s := f.Surface
	s.SetLineWidth(1.5 / z)

	var pts []physics.Vec2
	for _, energy := range zetaZeros[:n] {
		radius := energy * spread / z
		fv := sample(f.Eval, energy/10, f.Time)
		shift := fv * phaseMod
		lobes := math.Floor(energy / 5)

		pts = pts[:0]
		for a := 0.0; a <= tau; a += 0.02 {
			pts = append(pts, physics.Polar(radius+math.Sin(a*lobes+shift)*radius*0.1, a))
		}
		if len(pts) > 0 {
			pts = append(pts, pts[0])
		}
		s.SetStroke(hsl(180+energy*3, 0.8, 0.7, math.Max(0.1, math.Abs(fv))))
		polyline(s, pts)
	}
}
