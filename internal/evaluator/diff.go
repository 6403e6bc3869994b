package evaluator

const (
	// DerivativeStep is the central-difference step of Derivative.
	DerivativeStep = 1e-4
	// GradientStep is the central-difference step of Gradient2D.
	GradientStep = 1e-2
)

// Derivative estimates df/dx at x with a central difference.
// It returns 0 when either sample is non-finite, which keeps
// discontinuities such as 1/x from leaking into geometry.
func Derivative(f Func, x, t, a, b, c float64) float64 {
	f = OrZero(f)
	h := DerivativeStep
	hi := f(x+h, t, a, b, c)
	lo := f(x-h, t, a, b, c)
	if !Finite(hi) || !Finite(lo) {
		return 0
	}
	return (hi - lo) / (2 * h)
}

// Gradient2D estimates the gradient of f treating its second argument as
// a spatial coordinate: g(x, y) = f(x/scale, y/scale, t, 1, 1).
// Samples are not guarded; callers clamp the result.
func Gradient2D(f Func, x, y, t, scale float64) (gx, gy float64) {
	f = OrZero(f)
	h := GradientStep
	gx = (f((x+h)/scale, y/scale, t, 1, 1) - f((x-h)/scale, y/scale, t, 1, 1)) / (2 * h)
	gy = (f(x/scale, (y+h)/scale, t, 1, 1) - f(x/scale, (y-h)/scale, t, 1, 1)) / (2 * h)
	return gx, gy
}
