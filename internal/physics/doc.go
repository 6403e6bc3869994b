// Package physics is the primitive library shared by the visualization
// modes: small, frame-stepped simulations tuned to look right rather than
// to be numerically rigorous.
//
//   - [Spring]: spring-damper relaxation of a [Body] toward its anchor
//   - [Advection]: particles moved by a velocity sampled from f, respawned
//     when they leave the view or run out of life
//   - [Grower]: branching growth on an explicit work stack, with
//     [SynapseDetector] for converging endpoints
//   - [Layout], [Attach], [RingLattice], [Rewire]: graph evolution
//   - [Orbit] over [Lorenz] and [Rossler], and the [DeJong] map
//   - [VectorField]: curl and divergence of a field read from f
//   - [Filtration]: approximate persistence with a union-find sweep
//
// All randomness comes from a *rand.Rand owned by the caller's state, so
// a state seeded the same way evolves the same way:
//
//	rng := physics.NewRNG(seed)
//	ps := physics.NewParticles(200, physics.View(w, h), 10, rng)
package physics
