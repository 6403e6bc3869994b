// Package dynamo provides the ODE primitives behind the continuous chaotic
// attractors.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepper interface
//   - [Configurable]: named coefficients a mode can perturb per step
//
// # Example
//
//	l := physics.NewLorenz()
//	euler := integrators.NewEuler()
//	x := dynamo.State{0.1, 0, 0}
//	x = euler.Step(l, x, 0, 0.01)
//	if err := dynamo.Check(1, 0.01, x); err != nil {
//	    // restart the trail
//	}
//
// # Thread Safety
//
// Systems are plain values mutated by SetParam and are not safe for
// concurrent use.
package dynamo
