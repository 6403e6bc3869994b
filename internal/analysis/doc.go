// Package analysis measures functions and the systems modes animate.
//
//   - [Sample], [Derivatives] and [Summarize]: shape of f over an interval
//   - [Spectrum] and [PowerSpectrum]: frequency content of f over time
//   - [LyapunovExponent]: largest exponent via trajectory separation
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(physics.NewLorenz(), integrators.NewEuler(), x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
