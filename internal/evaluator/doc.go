// Package evaluator defines the function contract every projection mode
// consumes, the numeric differentiation built on it, and a compiler that
// turns formula text into a [Func].
//
// # Contract
//
// A [Func] is f(x, t, a, b, c). It may return NaN or ±Inf at any input,
// and a nil Func stands for a compile failure; callers wrap it with
// [OrZero] so that modes always see a callable function.
//
// # Differentiation
//
//   - [Derivative]: 1D central difference, h=1e-4, non-finite samples give 0
//   - [Gradient2D]: 2D central difference, h=1e-2, unguarded
//
// # Example
//
//	f, err := evaluator.Compile("a * sin(b * x + t)")
//	if err != nil {
//	    f = nil // modes substitute evaluator.Zero
//	}
//	slope := evaluator.Derivative(evaluator.OrZero(f), 0.5, 0, 1, 1, 1)
package evaluator
