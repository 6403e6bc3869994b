package physics

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

// Particle is an advected entity with an optional lifetime and trail.
type Particle struct {
	Pos, Vel Vec2
	Life     float64
	Trail    Trail[Vec2]
}

// Advection moves particles and respawns the ones that leave Bounds or
// run out of Life.
type Advection struct {
	Bounds Rect
	// Life is the lifetime a respawned particle starts with. Zero disables
	// lifetime counting.
	Life float64
	// SpawnIn, when non-zero, is where respawns land instead of Bounds.
	SpawnIn Rect
}

// NewParticles creates n particles uniformly inside r with empty trails.
func NewParticles(n int, r Rect, trail int, rng *rand.Rand) []Particle {
	if n < 0 {
		n = 0
	}
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{Pos: r.Random(rng), Trail: NewTrail[Vec2](trail)}
	}
	return ps
}

// Move displaces p by v, records the trail, and respawns p when it exits
// the bounds, ends up non-finite, or exhausts its lifetime. It reports
// whether a respawn happened.
func (a Advection) Move(p *Particle, v Vec2, rng *rand.Rand) bool {
	if v.Finite() {
		p.Pos = p.Pos.Add(v)
	}
	if a.Life > 0 {
		p.Life--
	}
	p.Trail.Push(p.Pos)

	if a.Bounds.Contains(p.Pos) && (a.Life <= 0 || p.Life > 0) {
		return false
	}
	a.Respawn(p, rng)
	return true
}

// Respawn places p at a uniformly random point and clears its motion.
func (a Advection) Respawn(p *Particle, rng *rand.Rand) {
	spawn := a.Bounds
	if a.SpawnIn != (Rect{}) {
		spawn = a.SpawnIn
	}
	p.Pos = spawn.Random(rng)
	p.Vel = Vec2{}
	p.Life = a.Life
	p.Trail.Reset()
}

// SlopeVelocity turns the local slope of f into a heading: the particle
// moves at speed along atan(f'(x/100)).
func SlopeVelocity(f evaluator.Func, p Vec2, t, speed float64) Vec2 {
	slope := evaluator.Derivative(f, p.X/100, t, 1, 1, 1)
	angle := math.Atan(slope)
	return Polar(speed, angle)
}

// GradientVelocity descends the 2D gradient of f at p, scaled by k.
// Non-finite gradients contribute nothing.
func GradientVelocity(f evaluator.Func, p Vec2, t, scale, k float64) Vec2 {
	gx, gy := evaluator.Gradient2D(f, p.X, p.Y, t, scale)
	v := Vec2{-gx * k, -gy * k}
	if !v.Finite() {
		return Vec2{}
	}
	return v
}
