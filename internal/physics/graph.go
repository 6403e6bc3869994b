package physics

import (
	"math"
	"math/rand/v2"
)

// MaxGrowthNodes caps preferential-attachment growth.
const MaxGrowthNodes = 150

type Node struct {
	ID     int
	Pos    Vec2
	Vel    Vec2
	Degree int
}

type Edge struct{ Source, Target int }

// Graph is an undirected simple graph whose node ids are slice indices.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// AddNode appends a node at pos and returns its id.
func (g *Graph) AddNode(pos Vec2) int {
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: id, Pos: pos})
	return id
}

// Connected reports whether a and b share an edge.
func (g *Graph) Connected(a, b int) bool {
	for _, e := range g.Edges {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return true
		}
	}
	return false
}

// Connect adds the edge a-b unless it is a loop or already present.
func (g *Graph) Connect(a, b int) bool {
	if a == b || a < 0 || b < 0 || a >= len(g.Nodes) || b >= len(g.Nodes) || g.Connected(a, b) {
		return false
	}
	g.Edges = append(g.Edges, Edge{Source: a, Target: b})
	g.Nodes[a].Degree++
	g.Nodes[b].Degree++
	return true
}

// Complete returns a complete graph on n nodes placed on a circle of radius r.
func Complete(n int, r float64) *Graph {
	g := &Graph{}
	for i := 0; i < n; i++ {
		g.AddNode(Polar(r, float64(i)/float64(n)*2*math.Pi))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Connect(i, j)
		}
	}
	return g
}

// Layout is a force-directed step: pairwise repulsion Repulsion/d^Exponent,
// spring attraction Stiffness·(d − ideal) along edges, and a centering pull.
// Nodes are updated in order, each seeing the positions already moved.
type Layout struct {
	Repulsion float64
	Exponent  float64
	Stiffness float64
	Centering float64
	Damping   float64
}

// Step advances every node by one frame. ideal returns the rest length of
// an edge between a and b; nil means zero rest length.
func (l Layout) Step(g *Graph, ideal func(a, b Vec2) float64) {
	exp := l.Exponent
	if exp == 0 {
		exp = 2
	}
	for i := range g.Nodes {
		a := &g.Nodes[i]
		var force Vec2

		for j := range g.Nodes {
			if i == j {
				continue
			}
			d := a.Pos.Sub(g.Nodes[j].Pos)
			distSq := d.X*d.X + d.Y*d.Y
			if distSq == 0 {
				distSq = 1
			}
			dist := math.Sqrt(distSq)
			mag := l.Repulsion / math.Pow(dist, exp)
			force = force.Add(d.Scale(mag / dist))
		}

		for _, e := range g.Edges {
			var other int
			switch i {
			case e.Source:
				other = e.Target
			case e.Target:
				other = e.Source
			default:
				continue
			}
			b := g.Nodes[other].Pos
			d := b.Sub(a.Pos)
			dist := d.Len()
			if dist == 0 {
				dist = 1
			}
			rest := 0.0
			if ideal != nil {
				rest = ideal(a.Pos, b)
			}
			spring := d.Scale(l.Stiffness * (dist - rest) / dist)
			if spring.Finite() {
				force = force.Add(spring)
			}
		}

		force = force.Sub(a.Pos.Scale(l.Centering))
		if !force.Finite() {
			force = Vec2{}
		}
		a.Vel = a.Vel.Add(force).Scale(l.Damping)
		a.Pos = a.Pos.Add(a.Vel)
	}
}

// Attach grows g by one node at pos and links it to up to k existing nodes
// by cumulative weighted selection, weight = degree + max(0, bonus(node)).
// Non-finite bonuses count as zero. When every weight is zero the nodes are
// weighted equally, so the new node always gets at least one edge when
// k ≥ 1 and an older node exists. It returns false once g holds
// MaxGrowthNodes nodes.
func Attach(g *Graph, pos Vec2, k int, bonus func(Node) float64, rng *rand.Rand) (int, bool) {
	if len(g.Nodes) >= MaxGrowthNodes {
		return -1, false
	}
	weights := make([]float64, len(g.Nodes))
	total := 0.0
	for i, n := range g.Nodes {
		w := float64(n.Degree)
		if bonus != nil {
			if b := bonus(n); !math.IsNaN(b) && !math.IsInf(b, 0) {
				w += math.Max(0, b)
			}
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	id := g.AddNode(pos)
	for e := 0; e < k; e++ {
		r := rng.Float64() * total
		for i, w := range weights {
			if r < w && g.Connect(id, i) {
				break
			}
			r -= w
		}
	}

	if k >= 1 && g.Nodes[id].Degree == 0 {
		for i := 0; i < id; i++ {
			if g.Connect(id, i) {
				break
			}
		}
	}
	return id, true
}

// RingLattice connects each of n nodes to its k/2 successors by index.
func RingLattice(n, k int) []Edge {
	if n <= 1 {
		return nil
	}
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := 1; j <= k/2; j++ {
			edges = append(edges, Edge{Source: i, Target: (i + j) % n})
		}
	}
	return edges
}

// Drawn is one edge of a per-frame overlay.
type Drawn struct {
	Edge
	Rewired bool
}

// Rewire returns this frame's overlay of base: with probability prob(e)
// an edge's far end is redirected to a uniformly random node. base itself
// is never modified.
func Rewire(base []Edge, n int, prob func(Edge) float64, rng *rand.Rand) []Drawn {
	out := make([]Drawn, len(base))
	for i, e := range base {
		d := Drawn{Edge: e}
		if n > 0 && rng.Float64() < prob(e) {
			d.Target = rng.IntN(n)
			d.Rewired = true
		}
		out[i] = d
	}
	return out
}
