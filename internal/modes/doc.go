// Package modes implements the visualization catalog. Each mode renders a
// user function f(x, t, a, b, c) through one of its algorithms; stateful
// algorithms keep particles, graphs or orbits between frames and draw
// their randomness from the session seed.
package modes
