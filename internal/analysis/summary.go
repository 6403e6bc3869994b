package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

// Stats summarizes a sampled curve.
type Stats struct {
	Min, Max, Mean float64
	// Finite is the fraction of samples that were finite.
	Finite        float64
	ZeroCrossings int
}

// Sample evaluates f at n evenly spaced points of [x0, x1] at time t.
func Sample(f evaluator.Func, x0, x1, t float64, n int) (xs, ys []float64) {
	if n < 2 {
		return nil, nil
	}
	f = evaluator.OrZero(f)
	xs = make([]float64, n)
	floats.Span(xs, x0, x1)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x, t, 1, 1, 1)
	}
	return xs, ys
}

// Derivatives returns f' at each x using the central difference.
func Derivatives(f evaluator.Func, xs []float64, t float64) []float64 {
	f = evaluator.OrZero(f)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = evaluator.Derivative(f, x, t, 1, 1, 1)
	}
	return out
}

// Summarize computes Stats over the finite values. Sign changes between
// consecutive finite values count as zero crossings.
func Summarize(values []float64) Stats {
	finite := Finite(values)
	if len(finite) == 0 {
		return Stats{}
	}
	s := Stats{
		Min:    floats.Min(finite),
		Max:    floats.Max(finite),
		Mean:   floats.Sum(finite) / float64(len(finite)),
		Finite: float64(len(finite)) / float64(len(values)),
	}
	for i := 1; i < len(finite); i++ {
		if math.Signbit(finite[i-1]) != math.Signbit(finite[i]) {
			s.ZeroCrossings++
		}
	}
	return s
}

// Finite returns the finite values in order.
func Finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if evaluator.Finite(v) {
			out = append(out, v)
		}
	}
	return out
}
