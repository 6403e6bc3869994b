package evaluator

import "math"

// Func is a compiled scalar function f(x, t, a, b, c).
// It may return NaN or ±Inf for any input. A nil Func stands for a
// formula that failed to compile.
type Func func(x, t, a, b, c float64) float64

// Zero is the constant-zero function substituted for a nil Func.
func Zero(_, _, _, _, _ float64) float64 { return 0 }

// OrZero returns f, or Zero when f is nil.
func OrZero(f Func) Func {
	if f == nil {
		return Zero
	}
	return f
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Or returns v when finite, otherwise fallback.
func Or(v, fallback float64) float64 {
	if Finite(v) {
		return v
	}
	return fallback
}

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
