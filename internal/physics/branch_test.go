package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowFullBinaryTree(t *testing.T) {
	var g Grower
	fork := Symmetric(func(Segment) float64 { return math.Pi / 4 }, 0.8, 0.8)

	var depths []int
	n := g.Grow(Shoot{Heading: -math.Pi / 2, Length: 50, Depth: 4, Thickness: 4}, fork, func(s Segment) {
		depths = append(depths, s.Depth)
	})

	assert.Equal(t, 15, n)
	assert.Equal(t, []int{4, 3, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 2, 1, 1}, depths)
}

func TestGrowTerminates(t *testing.T) {
	fork := Symmetric(func(Segment) float64 { return 0.3 }, 0.5, 0.5)
	root := Shoot{Length: 8, Depth: 100, Thickness: 1}

	tests := []struct {
		name string
		g    Grower
		want int
	}{
		{"sub-pixel length", Grower{}, 1 + 2 + 4 + 8},
		{"thin", Grower{MinThickness: 0.2}, 1 + 2 + 4},
		{"capped", Grower{MaxSegments: 5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.Grow(root, fork, func(Segment) {}))
		})
	}
}

func TestGrowNaNTurn(t *testing.T) {
	var g Grower
	fork := Symmetric(func(Segment) float64 { return math.NaN() }, 0.8, 1)
	g.Grow(Shoot{Length: 10, Depth: 3, Thickness: 1}, fork, func(s Segment) {
		assert.True(t, s.To.Finite())
	})
}

func TestSynapseDetector(t *testing.T) {
	d := SynapseDetector{Radius: 5}
	assert.False(t, d.Observe(Vec2{0, 0}))
	assert.False(t, d.Observe(Vec2{10, 0}))
	assert.True(t, d.Observe(Vec2{12, 1}))
	assert.Equal(t, 3, d.Count())

	d.Reset()
	assert.False(t, d.Observe(Vec2{12, 1}))
}

func TestSpringSettles(t *testing.T) {
	b := NewBody(Vec2{10, -5})
	b.Kick(Vec2{30, 30})
	s := Spring{K: 0.1, Damping: 0.8}
	for i := 0; i < 500; i++ {
		s.Step(&b, Vec2{})
	}
	assert.InDelta(t, 10, b.Pos.X, 1e-6)
	assert.InDelta(t, -5, b.Pos.Y, 1e-6)
}
