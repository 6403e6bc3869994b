package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

const (
	packetWavelength = 20
	packetAmplitude  = 50
)

var (
	barrierColor    = render.RGB255(100, 150, 255, 0.4)
	tunnelingColor  = render.RGB255(255, 255, 100, 0.5)
	wavePacketColor = render.HSL(60, 0.9, 0.7, 1)
)

type orbital struct {
	center physics.Vec2
	trail  physics.Trail[physics.Vec2]
}

// packet is a wave packet travelling over the potential f.
type packet struct {
	x, vx     float64
	amplitude float64
	tunneling bool
}

type quantumState struct {
	rng      *rand.Rand
	orbitals []orbital
	packet   packet
}

func quantumVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(quantumInterference),
		"v1": engine.VariantFunc[*rngState]{InitFn: newRNG, RenderFn: quantumCloud},
		"v2": engine.VariantFunc[*quantumState]{InitFn: quantumInit, RenderFn: quantumOrbitals},
		"v3": engine.VariantFunc[*quantumState]{InitFn: quantumInit, RenderFn: quantumPacket},
	}
}

func quantumInit(ctx engine.InitContext) *quantumState {
	st := &quantumState{rng: physics.NewRNG(ctx.Seed)}
	w, h := ctx.Bounds.W, ctx.Bounds.H
	switch ctx.Algorithm {
	case "v2":
		n := ctx.Params.Int("gridSize", 8)
		trail := ctx.Params.Int("trailLength", 20)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				c := physics.V(unitSpan(i, n)*w*0.8, unitSpan(j, n)*h*0.8)
				st.orbitals = append(st.orbitals, orbital{center: c, trail: physics.NewTrail[physics.Vec2](trail)})
			}
		}
	case "v3":
		st.packet = packet{x: -w / 2, vx: ctx.Params.Get("speed", 4), amplitude: packetAmplitude}
	}
	return st
}

// quantumInterference superposes f with a travelling sine.
func quantumInterference(f *engine.Frame) {
	n := f.Params.Int("particles", 100)
	if n < 2 {
		return
	}
	freq := f.Params.Get("frequency", 0.1)
	z := zoom(f)
	span := math.Min(f.Bounds.W, 800) / z
	t := f.Time
	s := f.Surface
	for i := 0; i < n; i++ {
		x := unitSpan(i, n) * span
		y := -sample(f.Eval, x/100, t)*50 - math.Sin(float64(i)*freq+t*2)*20
		s.SetFill(hsl(200-y, 0.7, 0.6, 0.8))
		dot(s, physics.V(x, y), 2/z)
	}
}

// quantumCloud scatters samples along -f, keeping each with probability
// f²/max f² over the visible range.
func quantumCloud(f *engine.Frame, st *rngState) {
	n := max(f.Params.Int("particles", 2000), 0)
	amp := f.Params.Get("amplitude", 80)
	jitter := f.Params.Get("jitter", 10)
	w, _ := view(f)
	z := zoom(f)
	t := f.Time
	s := f.Surface

	peak := 0.0
	for i := 0; i < 100; i++ {
		v := sample(f.Eval, (float64(i)/99-0.5)*w/100, t)
		peak = math.Max(peak, v*v)
	}
	if peak == 0 {
		peak = 1
	}

	size := 1.5 / z
	for i := 0; i < n; i++ {
		x := (st.rng.Float64() - 0.5) * w
		fv := sample(f.Eval, x/100, t)
		if st.rng.Float64() >= fv*fv/peak {
			continue
		}
		y := -fv*amp + (st.rng.Float64()-0.5)*jitter
		s.SetFill(hsl(180+fv*50, 0.8, 0.7, 0.5))
		s.FillRect(x, y, size, size)
	}
}

// quantumOrbitals runs a Lissajous orbit around each lattice site. f at
// the site detunes the vertical frequency.
func quantumOrbitals(f *engine.Frame, st *quantumState) {
	radius := f.Params.Get("orbitSize", 25)
	z := zoom(f)
	t := f.Time
	s := f.Surface
	s.SetLineWidth(1.5 / z)
	for i := range st.orbitals {
		o := &st.orbitals[i]
		fv := sample(f.Eval, o.center.X/100, t)
		pos := o.center.Add(physics.V(math.Cos(t*4), math.Sin(t*(2+fv*2)*2)).Scale(radius))
		o.trail.Push(pos)

		hue := 180 + fv*100
		if o.trail.Max > 0 {
			s.SetStroke(hsl(hue, 0.8, 0.7, 0.8*float64(o.trail.Len())/float64(o.trail.Max)))
			polyline(s, o.trail.Points)
		}
		s.SetFill(hsl(hue, 0.8, 0.7, 1))
		dot(s, pos, 2.5/z)
	}
}

// quantumPacket moves a Gaussian wave packet over the potential f. Where
// the barrier exceeds the packet energy it reflects, or with tunneling
// enabled crosses with probability exp(-0.1·ΔV) at a loss of amplitude.
func quantumPacket(f *engine.Frame, st *quantumState) {
	amp := f.Params.Get("amplitude", 60)
	speed := f.Params.Get("speed", 4)
	width := f.Params.Get("packetWidth", 80)
	normal := f.Params.Int("renderStyle", 0) == 1
	tunnel := f.Params.Get("tunneling", 1) != 0
	w, _ := view(f)
	z := zoom(f)
	t := f.Time
	s := f.Surface
	potential := func(x float64) float64 { return sample(f.Eval, x/100, t) * amp }

	var curve []physics.Vec2
	for x := -w / 2; x <= w/2; x += 5 {
		curve = append(curve, physics.V(x, -potential(x)))
	}
	s.SetStroke(barrierColor)
	s.SetLineWidth(1.5 / z)
	polyline(s, curve)

	p := &st.packet
	energy := speed * 5
	v := potential(p.x)
	switch {
	case tunnel && v > energy && !p.tunneling:
		if st.rng.Float64() < math.Exp(-0.1*(v-energy)) {
			p.tunneling = true
			p.amplitude *= 0.8
		} else {
			p.vx = -p.vx
		}
	case v < energy:
		p.tunneling = false
	}
	dir := 1.0
	if math.Signbit(p.vx) {
		dir = -1
	}
	ratio := 1.0
	if energy > 0 {
		ratio = (energy - v) / energy
	}
	p.vx = dir * speed * math.Max(0.1, ratio)
	if !p.tunneling && math.Abs(p.vx) < 0.1 {
		p.vx = -dir * speed * 0.5
	}
	p.x += p.vx
	if !(math.Abs(p.x) <= w/2) {
		*p = packet{x: -w / 2, vx: math.Abs(p.vx), amplitude: packetAmplitude}
	}

	var wave []physics.Vec2
	for off := -width * 2; off <= width*2; off += 2 {
		envelope := math.Exp(-(off / width) * (off / width))
		if envelope <= 0.01 {
			continue
		}
		x := p.x + off
		base := -potential(x)
		disp := math.Sin(off/packetWavelength*tau) * p.amplitude
		pt := physics.V(x, base+disp)
		if normal {
			slope := -evaluator.Or(evaluator.Derivative(f.Eval, x, t, 1, 1, 1), 0) * amp
			pt = physics.V(x, base).Add(physics.Polar(disp*envelope, math.Atan(slope/100)+math.Pi/2))
		}
		wave = append(wave, pt)
	}
	if p.tunneling {
		s.SetStroke(tunnelingColor)
	} else {
		s.SetStroke(wavePacketColor)
	}
	s.SetLineWidth(2 / z)
	polyline(s, wave)
}
