package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

const (
	// fireChance is the per-frame probability of a spontaneous firing.
	fireChance = 0.02
	maxSignals = 4096
)

type neuron struct {
	physics.Body
	activation float64
	lastFired  float64
}

type synapseRef struct{ layer, index int }

type signal struct {
	from, to synapseRef
	progress float64
	hue      float64
}

type neuralState struct {
	rng     *rand.Rand
	layers  [][]neuron
	signals []signal
	emitted int
	// ring joins the single layer into a cycle whose neighbors relay signals.
	ring bool
	// reactive neurons recoil on arrival and spring back to their anchor.
	reactive bool
}

func neuralVariants() map[string]engine.Variant {
	v := engine.VariantFunc[*neuralState]{InitFn: neuralInit, RenderFn: neuralRender}
	return map[string]engine.Variant{"v0": v, "v1": v, "v2": v, "v3": v}
}

func unitSpan(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i)/float64(n-1) - 0.5
}

func neuralInit(ctx engine.InitContext) *neuralState {
	st := &neuralState{
		rng:      physics.NewRNG(ctx.Seed),
		ring:     ctx.Algorithm == "v3",
		reactive: ctx.Algorithm == "v2" || ctx.Algorithm == "v3",
	}
	p := ctx.Params
	w, h := ctx.Bounds.W, ctx.Bounds.H
	jitter := 0.0
	if st.reactive {
		jitter = p.Get("jitter", 0)
	}
	place := func(x, y float64) neuron {
		jx := jitter * (st.rng.Float64() - 0.5)
		jy := jitter * (st.rng.Float64() - 0.5)
		return neuron{Body: physics.NewBody(physics.V(x+jx, y+jy)), lastFired: math.Inf(-1)}
	}

	switch ctx.Algorithm {
	case "v1":
		rings := max(p.Int("rings", 3), 0)
		per := max(p.Int("neuronsPerRing", 12), 0)
		outer := math.Min(w, h) * 0.4
		for i := 0; i < rings; i++ {
			r := float64(i+1) * outer / float64(rings)
			layer := make([]neuron, per)
			for j := range layer {
				at := physics.Polar(r, float64(j)/float64(per)*tau)
				layer[j] = place(at.X, at.Y)
			}
			st.layers = append(st.layers, layer)
		}
	case "v3":
		n := max(p.Int("nodes", 6), 0)
		r := math.Min(w, h) * 0.35
		layer := make([]neuron, n)
		for i := range layer {
			at := physics.Polar(r, float64(i)/float64(n)*tau)
			layer[i] = place(at.X, at.Y)
		}
		st.layers = append(st.layers, layer)
	default:
		layers := max(p.Int("layers", 4), 0)
		per := max(p.Int("neurons", 8), 0)
		for i := 0; i < layers; i++ {
			layer := make([]neuron, per)
			for j := range layer {
				layer[j] = place(unitSpan(i, layers)*w*0.8, unitSpan(j, per)*h*0.8)
			}
			st.layers = append(st.layers, layer)
		}
	}
	return st
}

func (st *neuralState) at(r synapseRef) *neuron { return &st.layers[r.layer][r.index] }

func (st *neuralState) emit(from, to synapseRef) {
	if len(st.signals) >= maxSignals {
		return
	}
	st.emitted++
	st.signals = append(st.signals, signal{from: from, to: to, hue: math.Mod(float64(st.emitted)*20, 360)})
}

// neighbors returns the ring neighbors of i.
func (st *neuralState) neighbors(i int) [2]int {
	n := len(st.layers[0])
	return [2]int{(i + 1) % n, (i - 1 + n) % n}
}

func neuralRender(f *engine.Frame, st *neuralState) {
	if len(st.layers) == 0 {
		return
	}
	z := zoom(f)
	t := f.Time
	speed := f.Params.Get("signalSpeed", 2)
	recoil := f.Params.Get("recoilStrength", 5)
	s := f.Surface

	var arrived []signal
	live := st.signals[:0]
	for _, sg := range st.signals {
		sg.progress += 0.01 * speed
		a, b := st.at(sg.from).Pos, st.at(sg.to).Pos
		s.SetFill(hsl(sg.hue, 0.9, 0.7, 1-sg.progress))
		dot(s, a.Add(b.Sub(a).Scale(sg.progress)), 3/z)
		if sg.progress >= 1 {
			arrived = append(arrived, sg)
		} else {
			live = append(live, sg)
		}
	}
	st.signals = live

	for _, sg := range arrived {
		target := st.at(sg.to)
		target.activation = 1
		if st.ring {
			target.lastFired = t
		}
		if st.reactive {
			angle := sample(f.Eval, float64(sg.from.index), t) * math.Pi
			target.Kick(physics.Polar(recoil, angle))
		}
		switch {
		case st.ring:
			for _, nb := range st.neighbors(sg.to.index) {
				if t-st.layers[0][nb].lastFired > 0.5 {
					st.emit(sg.to, synapseRef{0, nb})
				}
			}
		case sg.to.layer < len(st.layers)-1:
			act := math.Abs(sample(f.Eval, float64(sg.to.index), t))
			for j := range st.layers[sg.to.layer+1] {
				if st.rng.Float64() < act {
					st.emit(sg.to, synapseRef{sg.to.layer + 1, j})
				}
			}
		}
	}

	drawNeurons(s, st, z)
	st.fireSpontaneously(t)
}

var (
	neuronSpring = physics.Spring{K: 0.1, Damping: 0.8}
	axonColor    = render.Color{R: 1, G: 1, B: 1, A: 0.1}
)

func drawNeurons(s render.Surface, st *neuralState, z float64) {
	s.SetStroke(axonColor)
	s.SetLineWidth(0.5 / z)
	for i, layer := range st.layers {
		if st.ring {
			for j := range layer {
				line(s, layer[j].Pos, layer[(j+1)%len(layer)].Pos)
			}
		}
		for j := range layer {
			n := &layer[j]
			if st.reactive {
				neuronSpring.Step(&n.Body, physics.Vec2{})
			} else {
				n.Pos = n.Anchor
			}
			if !st.ring && i < len(st.layers)-1 {
				s.SetStroke(axonColor)
				for _, next := range st.layers[i+1] {
					line(s, n.Pos, next.Pos)
				}
			}
			n.activation *= 0.95
			s.SetFill(hsl(180, 0.8, 0.8, 0.2+n.activation*0.8))
			dot(s, n.Pos, 4/z)
		}
	}
}

func (st *neuralState) fireSpontaneously(t float64) {
	if st.rng.Float64() >= fireChance || len(st.layers[0]) == 0 {
		return
	}
	i := st.rng.IntN(len(st.layers[0]))
	start := &st.layers[0][i]
	src := synapseRef{0, i}

	if st.ring {
		if t-start.lastFired <= 1 {
			return
		}
		start.activation = 1
		start.lastFired = t
		for _, nb := range st.neighbors(i) {
			st.emit(src, synapseRef{0, nb})
		}
		return
	}

	start.activation = 1
	if len(st.layers) > 1 {
		for j := range st.layers[1] {
			st.emit(src, synapseRef{1, j})
		}
	}
}
