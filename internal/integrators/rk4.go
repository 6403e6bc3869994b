package integrators

import "github.com/san-kum/synesthetica/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper. It keeps its stage
// buffers between steps, so one RK4 must not be shared across goroutines.
type RK4 struct {
	k      [4]dynamo.State
	probe  dynamo.State
	stages int
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.probe) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.probe = make(dynamo.State, n)
}

// stage evaluates the derivative at x + h*prev into r.k[i].
func (r *RK4) stage(i int, dyn dynamo.System, x, prev dynamo.State, t, h float64) {
	for j := range x {
		r.probe[j] = x[j] + h*prev[j]
	}
	copy(r.k[i], dyn.Derive(r.probe, t+h))
	r.stages++
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	r.resize(n)

	copy(r.k[0], dyn.Derive(x, t))
	r.stages++
	r.stage(1, dyn, x, r.k[0], t, dt/2)
	r.stage(2, dyn, x, r.k[1], t, dt/2)
	r.stage(3, dyn, x, r.k[2], t, dt)

	out := make(dynamo.State, n)
	dt6 := dt / 6.0
	for i := range out {
		out[i] = x[i] + dt6*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return out
}

// Evaluations reports how many derivative calls the stepper has made.
func (r *RK4) Evaluations() int { return r.stages }
