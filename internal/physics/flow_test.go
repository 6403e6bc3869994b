package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

func TestAdvectionRespawnsOutOfBounds(t *testing.T) {
	rng := NewRNG(1)
	a := Advection{Bounds: View(100, 100)}
	p := Particle{Pos: Vec2{45, 0}, Trail: NewTrail[Vec2](5)}

	respawned := a.Move(&p, Vec2{10, 0}, rng)
	assert.True(t, respawned)
	assert.True(t, a.Bounds.Contains(p.Pos))
	assert.Zero(t, p.Trail.Len())
}

func TestAdvectionIgnoresNonFiniteVelocity(t *testing.T) {
	a := Advection{Bounds: View(100, 100)}
	p := Particle{Pos: Vec2{1, 2}, Trail: NewTrail[Vec2](5)}

	a.Move(&p, Vec2{math.NaN(), math.Inf(1)}, NewRNG(1))
	assert.Equal(t, Vec2{1, 2}, p.Pos)
}

func TestAdvectionLifetime(t *testing.T) {
	rng := NewRNG(4)
	a := Advection{Bounds: View(100, 100), Life: 3}
	p := Particle{Life: 2, Trail: NewTrail[Vec2](0)}

	assert.False(t, a.Move(&p, Vec2{}, rng))
	assert.True(t, a.Move(&p, Vec2{}, rng))
	assert.Equal(t, 3.0, p.Life)
}

func TestZeroFieldStaysInView(t *testing.T) {
	rng := NewRNG(11)
	view := View(800, 600)
	a := Advection{Bounds: view, Life: 200}
	ps := NewParticles(200, view, 10, rng)
	require.Len(t, ps, 200)

	for frame := 0; frame < 60; frame++ {
		for i := range ps {
			v := SlopeVelocity(evaluator.Zero, ps[i].Pos, float64(frame)/60, 1.5)
			a.Move(&ps[i], v, rng)
		}
	}
	for _, p := range ps {
		assert.True(t, p.Pos.Finite())
		assert.True(t, view.Contains(p.Pos), "particle escaped: %v", p.Pos)
	}
}

func TestSlopeVelocity(t *testing.T) {
	v := SlopeVelocity(func(x, _, _, _, _ float64) float64 { return x * 100 }, Vec2{}, 0, 2)
	assert.InDelta(t, 2*math.Cos(math.Atan(100)), v.X, 1e-6)
	assert.InDelta(t, 2*math.Sin(math.Atan(100)), v.Y, 1e-6)
}

func TestGradientVelocityGuardsNaN(t *testing.T) {
	nan := func(_, _, _, _, _ float64) float64 { return math.NaN() }
	assert.Equal(t, Vec2{}, GradientVelocity(nan, Vec2{1, 1}, 0, 100, 5))
}

func TestTrailFIFO(t *testing.T) {
	tr := NewTrail[int](3)
	for i := 1; i <= 5; i++ {
		tr.Push(i)
	}
	assert.Equal(t, []int{3, 4, 5}, tr.Points)
	last, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, last)

	empty := NewTrail[int](0)
	empty.Push(1)
	assert.Zero(t, empty.Len())
}
