package analysis

import (
	"math"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence after every step
// 3. Sum ln(d/d0), then pull the companion back to distance d0
//
// λ ≈ sum / t. It returns 0 when either trajectory leaves the finite
// numbers.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	t := 0.0
	sumLog := 0.0
	for t < duration {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt
		if !x.IsValid() || !xp.IsValid() {
			return 0
		}

		sep := xp.Add(x.Scale(-1)).Norm()
		if sep == 0 {
			continue
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if t == 0 {
		return 0
	}
	return sumLog / t
}
