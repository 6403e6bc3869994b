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

const (
	scanInterval = 0.1
	scanPoints   = 100
	maxSystems   = 512
	// pulseStride is the progress a pulse needs per node on its path.
	pulseStride = 10
)

type sprout struct {
	pos     physics.Vec2
	heading float64
	length  float64
	depth   int
	life    float64
}

type vine struct {
	pos       physics.Vec2
	heading   float64
	length    float64
	maxLength float64
}

type pulse struct {
	progress float64
	path     []int
}

// eventSystem is everything grown from one zero crossing.
type eventSystem struct {
	life    float64
	sprouts []sprout
	vines   []vine
	pulses  []pulse
}

func (e *eventSystem) empty() bool {
	return len(e.sprouts) == 0 && len(e.vines) == 0 && len(e.pulses) == 0
}

type eventState struct {
	rng       *rand.Rand
	lastScan  float64
	systems   []*eventSystem
	network   *physics.Graph
	neighbors [][]int
}

func eventVariants() map[string]engine.Variant {
	v := engine.VariantFunc[*eventState]{InitFn: eventInit, RenderFn: eventRender}
	return map[string]engine.Variant{"v0": v, "v1": v, "v2": v}
}

func eventInit(ctx engine.InitContext) *eventState {
	st := &eventState{rng: physics.NewRNG(ctx.Seed)}
	if ctx.Algorithm == "v2" {
		st.network, st.neighbors = pulseNetwork(ctx.Params.Int("density", 10)*10, math.Min(ctx.Bounds.W, ctx.Bounds.H)*0.4, st.rng)
	}
	return st
}

// pulseNetwork scatters n nodes uniformly over a disc of radius r and
// links each node to its three nearest neighbors.
func pulseNetwork(n int, r float64, rng *rand.Rand) (*physics.Graph, [][]int) {
	g := &physics.Graph{}
	for i := 0; i < n; i++ {
		g.AddNode(physics.Polar(math.Sqrt(rng.Float64())*r, rng.Float64()*tau))
	}
	order := make([]int, n)
	for i := range g.Nodes {
		for k := range order {
			order[k] = k
		}
		a := g.Nodes[i].Pos
		slices.SortStableFunc(order, func(x, y int) int {
			return cmp.Compare(a.Dist(g.Nodes[x].Pos), a.Dist(g.Nodes[y].Pos))
		})
		for _, j := range order[1:min(4, n)] {
			if i < j {
				g.Connect(i, j)
			}
		}
	}
	adj := make([][]int, n)
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return g, adj
}

// scan seeds a system at every sign change of f over x in [-1, 1].
func (st *eventState) scan(f *engine.Frame) {
	p := f.Params
	t := f.Time
	last := sample(f.Eval, -1, t)
	for i := 1; i < scanPoints; i++ {
		x := float64(i)/scanPoints*2 - 1
		cur := sample(f.Eval, x, t)
		crossed := (last < 0 && cur >= 0) || (last > 0 && cur <= 0)
		last = cur
		if !crossed || len(st.systems) >= maxSystems {
			continue
		}
		slope := evaluator.Derivative(f.Eval, x, t, 1, 1, 1)
		sys := &eventSystem{life: 1}

		switch f.Algorithm {
		case "v1":
			a := x * tau
			sys.vines = append(sys.vines, vine{pos: physics.Polar(20, a), heading: a, maxLength: p.Get("length", 150)})
		case "v2":
			if st.network == nil || len(st.network.Nodes) == 0 {
				continue
			}
			start := st.rng.IntN(len(st.network.Nodes))
			sys.pulses = append(sys.pulses, pulse{path: []int{start}})
		default:
			origin := physics.Polar(150, x*math.Pi)
			heading := math.Atan2(slope, 1) + (st.rng.Float64()-0.5)*0.2
			if p.Int("growthMode", 0) == 1 {
				heading = math.Atan2(origin.Y, origin.X)
			}
			sys.sprouts = append(sys.sprouts, sprout{
				pos: origin, heading: heading, depth: 5, life: 1,
				length: p.Get("length", 20) * (1 + math.Abs(cur)),
			})
		}
		st.systems = append(st.systems, sys)
	}
}

func eventRender(f *engine.Frame, st *eventState) {
	t := f.Time
	if t > st.lastScan+scanInterval || t < st.lastScan {
		st.lastScan = t
		st.scan(f)
	}

	s := f.Surface
	z := zoom(f)
	pal := PaletteAt(f.Params.Int("palette", 0))
	tone := 0.0
	if f.Params.Get("evolve", 0) > 0 {
		tone = t
	}
	decay := f.Params.Get("decay", 0.99)

	withBlend(s, render.BlendAdditive, func() {
		if st.network != nil {
			s.SetStroke(axonColor)
			s.SetLineWidth(0.5 / z)
			for _, e := range st.network.Edges {
				line(s, st.network.Nodes[e.Source].Pos, st.network.Nodes[e.Target].Pos)
			}
		}

		live := st.systems[:0]
		for _, sys := range st.systems {
			st.growForest(f, sys, pal, tone)
			growVines(f, sys, pal, tone)
			st.advancePulses(f, sys, pal, tone)
			sys.life *= decay
			if sys.life > 0.01 && !sys.empty() {
				live = append(live, sys)
			}
		}
		clear(st.systems[len(live):])
		st.systems = live
	})
}

func (st *eventState) growForest(f *engine.Frame, sys *eventSystem, pal Palette, tone float64) {
	if len(sys.sprouts) == 0 {
		return
	}
	s := f.Surface
	z := zoom(f)
	particles := f.Params.Int("renderStyle", 0) == 1
	spread := f.Params.Get("angle", 0.5)
	step, fade := 0.1, 0.995
	if particles {
		step, fade = 0.01, 0.98
	}

	var born []sprout
	for i := range sys.sprouts {
		b := &sys.sprouts[i]
		to := b.pos.Add(physics.Polar(b.length*step, b.heading))
		s.SetStroke(pal(b.life, tone).WithAlpha(b.life * 0.8))
		s.SetLineWidth(float64(b.depth) * 0.5 * b.life / z)
		line(s, b.pos, to)
		b.pos = to
		b.life *= fade

		if b.depth > 0 && !particles {
			turn := spread * (1 + sample(f.Eval, float64(b.depth), f.Time)*0.2)
			left, right := *b, *b
			left.heading -= turn
			right.heading += turn
			left.length *= 0.8
			right.length *= 0.8
			left.depth--
			right.depth--
			born = append(born, left, right)
			b.depth = 0
		}
	}
	sys.sprouts = append(sys.sprouts, born...)
	sys.sprouts = slices.DeleteFunc(sys.sprouts, func(b sprout) bool { return !(b.life > 0.01) })
}

func growVines(f *engine.Frame, sys *eventSystem, pal Palette, tone float64) {
	s := f.Surface
	speed := f.Params.Get("speed", 2)
	curvature := f.Params.Get("curvature", 0.1)
	s.SetLineWidth(2 / zoom(f))
	for i := range sys.vines {
		v := &sys.vines[i]
		if !(v.length < v.maxLength) {
			continue
		}
		v.heading += curvature * sample(f.Eval, v.length/v.maxLength, f.Time)
		to := v.pos.Add(physics.Polar(speed, v.heading))
		s.SetStroke(pal(v.length/v.maxLength, tone))
		line(s, v.pos, to)
		v.pos = to
		v.length += speed
	}
}

func (st *eventState) advancePulses(f *engine.Frame, sys *eventSystem, pal Palette, tone float64) {
	if st.network == nil {
		return
	}
	s := f.Surface
	z := zoom(f)
	speed := f.Params.Get("pulseSpeed", 4)
	width := f.Params.Get("pulseWidth", 40)
	for i := range sys.pulses {
		pl := &sys.pulses[i]
		pl.progress += speed
		for k, node := range pl.path {
			d := pl.progress - float64(k)*pulseStride
			if d <= 0 || d >= width {
				continue
			}
			intensity := math.Sin(d / width * math.Pi)
			s.SetFill(pal(intensity, tone).WithAlpha(intensity * 0.8))
			dot(s, st.network.Nodes[node].Pos, intensity*3/z)
		}
		if pl.progress > float64(len(pl.path))*pulseStride {
			nbs := st.neighbors[pl.path[len(pl.path)-1]]
			if len(nbs) > 0 {
				next := nbs[st.rng.IntN(len(nbs))]
				if !slices.Contains(pl.path, next) {
					pl.path = append(pl.path, next)
				}
			}
		}
	}
}
