package physics

import (
	"math"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

// Orbit integrates a continuous system and keeps the most recent states as
// a trail. The head of the trail is the current state.
type Orbit struct {
	System     dynamo.System
	Integrator dynamo.Integrator
	Start      dynamo.State
	Trail      Trail[dynamo.State]
	Time       float64

	steps int
}

func NewOrbit(sys dynamo.System, integ dynamo.Integrator, start dynamo.State, max int) *Orbit {
	o := &Orbit{System: sys, Integrator: integ, Start: start.Clone(), Trail: NewTrail[dynamo.State](max)}
	o.Trail.Push(start.Clone())
	return o
}

// Head returns the current state.
func (o *Orbit) Head() dynamo.State {
	if x, ok := o.Trail.Last(); ok {
		return x
	}
	return o.Start
}

// Advance runs n Euler-style substeps. step is called with the head before
// each substep and returns its dt; it may retune the system's coefficients.
// A non-finite dt skips the substep. When the orbit leaves the finite
// numbers it restarts from Start and the error is returned.
func (o *Orbit) Advance(n int, step func(x dynamo.State) float64) error {
	for i := 0; i < n; i++ {
		x := o.Head()
		dt := step(x)
		if math.IsNaN(dt) || math.IsInf(dt, 0) {
			continue
		}
		next := o.Integrator.Step(o.System, x, o.Time, dt)
		o.steps++
		if err := dynamo.Check(o.steps, o.Time, next); err != nil {
			o.Restart()
			return err
		}
		o.Time += dt
		o.Trail.Push(next)
	}
	return nil
}

// Restart drops the trail and returns to Start.
func (o *Orbit) Restart() {
	o.Trail.Reset()
	o.Trail.Push(o.Start.Clone())
	o.Time = 0
}

// Project maps a 3D state to the plane with a mild z perspective, then
// tilts it by pitch around the x axis.
func Project(s dynamo.State, scale, pitch float64) Vec2 {
	persp := 1 + s[2]/50
	x := s[0] * scale * persp
	y := s[1] * scale * persp
	return Vec2{x, y*math.Cos(pitch) - s[2]*scale*math.Sin(pitch)}
}

// DeJong is the Peter de Jong discrete map.
type DeJong struct{ A, B, C, D float64 }

func NewDeJong() DeJong { return DeJong{1.4, -2.3, 2.4, -2.1} }

func (d DeJong) Map(p Vec2) Vec2 {
	return Vec2{
		math.Sin(d.A*p.Y) - math.Cos(d.B*p.X),
		math.Sin(d.C*p.X) - math.Cos(d.D*p.Y),
	}
}
