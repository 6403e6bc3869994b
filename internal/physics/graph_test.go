package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingLattice(t *testing.T) {
	tests := []struct {
		n, k int
		want int
	}{
		{30, 4, 60},
		{10, 2, 10},
		{5, 1, 0},
		{1, 4, 0},
	}
	for _, tt := range tests {
		edges := RingLattice(tt.n, tt.k)
		assert.Len(t, edges, tt.want, "n=%d k=%d", tt.n, tt.k)
		for _, e := range edges {
			assert.NotEqual(t, e.Source, e.Target)
		}
	}
}

func TestRewireLeavesBaseIntact(t *testing.T) {
	rng := NewRNG(7)
	base := RingLattice(30, 4)
	snapshot := append([]Edge(nil), base...)

	rewired := 0
	for frame := 0; frame < 100; frame++ {
		drawn := Rewire(base, 30, func(Edge) float64 { return 0.5 }, rng)
		require.Len(t, drawn, len(snapshot))
		for i, d := range drawn {
			assert.Equal(t, snapshot[i].Source, d.Source)
			if d.Rewired {
				rewired++
			} else {
				assert.Equal(t, snapshot[i].Target, d.Target)
			}
		}
	}
	assert.Equal(t, snapshot, base)
	assert.Positive(t, rewired)
}

func TestRewireZeroProbability(t *testing.T) {
	base := RingLattice(12, 4)
	drawn := Rewire(base, 12, func(Edge) float64 { return 0 }, NewRNG(1))
	for i, d := range drawn {
		assert.False(t, d.Rewired)
		assert.Equal(t, base[i], d.Edge)
	}
}

func TestAttachCapAndDegree(t *testing.T) {
	rng := NewRNG(42)
	g := Complete(3, 50)
	zero := func(Node) float64 { return 0 }

	for i := 0; i < 300; i++ {
		id, ok := Attach(g, Vec2{}, 2, zero, rng)
		if !ok {
			break
		}
		assert.GreaterOrEqual(t, g.Nodes[id].Degree, 1, "node %d", id)
	}
	assert.Len(t, g.Nodes, MaxGrowthNodes)

	_, ok := Attach(g, Vec2{}, 2, zero, rng)
	assert.False(t, ok)
	assert.Len(t, g.Nodes, MaxGrowthNodes)
}

func TestAttachToIsolatedNode(t *testing.T) {
	g := &Graph{}
	g.AddNode(Vec2{})

	id, ok := Attach(g, Vec2{X: 10}, 3, nil, NewRNG(3))
	require.True(t, ok)
	assert.Equal(t, 1, g.Nodes[id].Degree)
	assert.True(t, g.Connected(0, id))
}

func TestAttachIgnoresNonFiniteBonus(t *testing.T) {
	g := Complete(4, 50)
	nan := func(Node) float64 { return 0 / zeroValue() }
	id, ok := Attach(g, Vec2{}, 2, nan, NewRNG(9))
	require.True(t, ok)
	assert.GreaterOrEqual(t, g.Nodes[id].Degree, 1)
}

func zeroValue() float64 { return 0 }

func TestConnectRejectsDuplicatesAndLoops(t *testing.T) {
	g := &Graph{}
	a, b := g.AddNode(Vec2{}), g.AddNode(Vec2{X: 1})

	assert.True(t, g.Connect(a, b))
	assert.False(t, g.Connect(b, a))
	assert.False(t, g.Connect(a, a))
	assert.Len(t, g.Edges, 1)
	assert.Equal(t, 1, g.Nodes[a].Degree)
}

func TestLayoutStaysFinite(t *testing.T) {
	g := Complete(5, 0)
	l := Layout{Repulsion: 1000, Stiffness: 0.01, Centering: 0.001, Damping: 0.95}
	for i := 0; i < 200; i++ {
		l.Step(g, func(a, b Vec2) float64 { return 100 })
	}
	for _, n := range g.Nodes {
		assert.True(t, n.Pos.Finite(), "node %d at %v", n.ID, n.Pos)
	}
}

func TestLayoutSeparatesCoincidentPair(t *testing.T) {
	g := &Graph{}
	g.AddNode(Vec2{X: -1})
	g.AddNode(Vec2{X: 1})
	l := Layout{Repulsion: 50, Exponent: 1, Damping: 0.9}
	l.Step(g, nil)
	assert.Less(t, g.Nodes[0].Pos.X, -1.0)
}
