package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltrationDegenerate(t *testing.T) {
	for _, pts := range [][]Vec2{nil, {{X: 3, Y: 4}}} {
		bc := Filtration(pts, 100, NewRNG(1))
		assert.Zero(t, bc.Merges)
		assert.Empty(t, bc.H1)
		assert.Len(t, bc.H0, len(pts))
	}
}

func TestFiltrationColinear(t *testing.T) {
	for _, n := range []int{2, 5, 12} {
		pts := make([]Vec2, n)
		for i := range pts {
			pts[i] = Vec2{X: float64(i) * 10}
		}
		bc := Filtration(pts, 100, NewRNG(2))

		assert.Equal(t, n-1, bc.Merges, "n=%d", n)
		finite := 0
		for _, b := range bc.H0 {
			if !math.IsInf(b.Death, 1) {
				finite++
				assert.InDelta(t, 10, b.Death, 1e-9)
			}
		}
		assert.Equal(t, n-1, finite)
		assert.Len(t, bc.H1, n*(n-1)/2-(n-1))
	}
}

func TestFiltrationCycleDeathHeuristic(t *testing.T) {
	pts := []Vec2{{0, 0}, {10, 0}, {0, 10}}
	bc := Filtration(pts, 100, NewRNG(5))
	for _, b := range bc.H1 {
		assert.GreaterOrEqual(t, b.Death, b.Birth+20)
		assert.LessOrEqual(t, b.Death, b.Birth+100)
	}
}

func TestPairwiseEdgesSorted(t *testing.T) {
	edges := PairwiseEdges([]Vec2{{0, 0}, {5, 0}, {1, 0}})
	assert.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, edges[i-1].Dist, edges[i].Dist)
	}
}

func TestDSU(t *testing.T) {
	d := NewDSU(4)
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.False(t, d.Union(1, 0))
	assert.True(t, d.Union(1, 3))
	assert.Equal(t, d.Find(0), d.Find(2))
}
