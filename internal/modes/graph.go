package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

type graphState struct {
	rng        *rand.Rand
	graph      *physics.Graph
	lastGrowth float64
	overlay    []physics.Drawn
}

var edgeColor = render.RGB255(100, 200, 255, 0.3)

func graphVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(graphProximity),
		"v1": engine.VariantFunc[*graphState]{InitFn: graphForceInit, RenderFn: graphForce},
		"v2": engine.VariantFunc[*graphState]{InitFn: graphGrowthInit, RenderFn: graphGrowth},
		"v3": engine.VariantFunc[*graphState]{InitFn: graphSmallWorldInit, RenderFn: graphSmallWorld},
	}
}

// drawNode sizes and colors a node by its degree.
func drawNode(s render.Surface, pos physics.Vec2, degree int, z float64) {
	d := float64(degree)
	s.SetFill(hsl(180+d*25, 0.7, 0.6, 0.9))
	dot(s, pos, (4+d*0.5)/z)
}

func drawGraph(s render.Surface, g *physics.Graph, z float64) {
	s.SetStroke(edgeColor)
	s.SetLineWidth(1 / z)
	for _, e := range g.Edges {
		line(s, g.Nodes[e.Source].Pos, g.Nodes[e.Target].Pos)
	}
	for _, n := range g.Nodes {
		drawNode(s, n.Pos, n.Degree, z)
	}
}

func graphProximity(f *engine.Frame) {
	n := max(f.Params.Int("nodes", 12), 0)
	reach := 100 * f.Params.Get("connectivity", 0.4)
	z := zoom(f)
	s := f.Surface

	pos := make([]physics.Vec2, n)
	for i := range pos {
		angle := float64(i)/float64(n)*tau + f.Time*0.1
		pos[i] = physics.Polar(100+sample(f.Eval, float64(i), f.Time)*30, angle)
	}

	degree := make([]int, n)
	s.SetStroke(edgeColor)
	s.SetLineWidth(1 / z)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if pos[i].Dist(pos[j]) < reach {
				line(s, pos[i], pos[j])
				degree[i]++
				degree[j]++
			}
		}
	}
	for i, p := range pos {
		drawNode(s, p, degree[i], z)
	}
}

func graphForceInit(ctx engine.InitContext) *graphState {
	st := &graphState{rng: physics.NewRNG(ctx.Seed), graph: &physics.Graph{}}
	n := ctx.Params.Int("nodes", 20)
	for i := 0; i < n; i++ {
		st.graph.AddNode(physics.V(
			(st.rng.Float64()-0.5)*ctx.Bounds.W*0.5,
			(st.rng.Float64()-0.5)*ctx.Bounds.H*0.5,
		))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if st.rng.Float64() < 0.2 {
				st.graph.Connect(i, j)
			}
		}
	}
	return st
}

func graphForce(f *engine.Frame, st *graphState) {
	lengthMod := f.Params.Get("lengthMod", 1)
	layout := physics.Layout{
		Repulsion: f.Params.Get("repulsion", 200),
		Stiffness: f.Params.Get("stiffness", 0.02),
		Centering: 0.001,
		Damping:   0.95,
	}
	layout.Step(st.graph, func(a, b physics.Vec2) float64 {
		mid := (a.X + b.X) / 2
		return 100 * (1 + sample(f.Eval, mid/200, f.Time)*lengthMod)
	})
	drawGraph(f.Surface, st.graph, zoom(f))
}

func graphGrowthInit(ctx engine.InitContext) *graphState {
	return &graphState{
		rng:   physics.NewRNG(ctx.Seed),
		graph: physics.Complete(ctx.Params.Int("initialNodes", 3), 50),
	}
}

var growthLayout = physics.Layout{Repulsion: 50, Exponent: 1, Stiffness: 0.01, Centering: 0.01, Damping: 0.9}

func graphGrowth(f *engine.Frame, st *graphState) {
	interval := f.Params.Get("growthRate", 2)
	mod := f.Params.Get("attractionMod", 1)

	if f.Time-st.lastGrowth > interval && len(st.graph.Nodes) < physics.MaxGrowthNodes {
		st.lastGrowth = f.Time
		bonus := func(n physics.Node) float64 {
			return sample(f.Eval, n.Pos.X/200, f.Time) * mod * 5
		}
		physics.Attach(st.graph, physics.Vec2{}, f.Params.Int("edgesPerNode", 2), bonus, st.rng)
	}

	growthLayout.Step(st.graph, nil)
	drawGraph(f.Surface, st.graph, zoom(f))
}

func graphSmallWorldInit(ctx engine.InitContext) *graphState {
	n := ctx.Params.Int("nodes", 30)
	r := math.Min(ctx.Bounds.W, ctx.Bounds.H) * 0.4
	g := &physics.Graph{}
	for i := 0; i < n; i++ {
		g.AddNode(physics.Polar(r, float64(i)/float64(n)*tau))
	}
	g.Edges = physics.RingLattice(len(g.Nodes), ctx.Params.Int("neighbors", 4))
	return &graphState{rng: physics.NewRNG(ctx.Seed), graph: g}
}

func graphSmallWorld(f *engine.Frame, st *graphState) {
	g := st.graph
	n := len(g.Nodes)
	if n == 0 {
		return
	}
	base := f.Params.Get("rewireProb", 0.1)
	mod := f.Params.Get("rewireMod", 0.2)
	z := zoom(f)
	s := f.Surface

	st.overlay = physics.Rewire(g.Edges, n, func(e physics.Edge) float64 {
		return base + sample(f.Eval, float64(e.Source)/float64(n)*2-1, f.Time)*mod
	}, st.rng)

	degree := make([]int, n)
	for _, e := range st.overlay {
		a, b := g.Nodes[e.Source].Pos, g.Nodes[e.Target].Pos
		if e.Rewired {
			s.SetStroke(hsl(60, 0.8, 0.7, 0.7))
			s.SetLineWidth(1.5 / z)
		} else {
			s.SetStroke(edgeColor)
			s.SetLineWidth(1 / z)
		}
		line(s, a, b)
		degree[e.Source]++
		degree[e.Target]++
	}
	for i, node := range g.Nodes {
		drawNode(s, node.Pos, degree[i], z)
	}
}
