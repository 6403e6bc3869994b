package evaluator

import (
	"math"
	"testing"
)

func sinFunc(x, _, _, _, _ float64) float64 { return math.Sin(x) }

func TestDerivative(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		x    float64
		want float64
		tol  float64
	}{
		{"sin at 0", sinFunc, 0, 1, 1e-6},
		{"sin at 1", sinFunc, 1, math.Cos(1), 1e-6},
		{"sin at -2.5", sinFunc, -2.5, math.Cos(-2.5), 1e-6},
		{"square", func(x, _, _, _, _ float64) float64 { return x * x }, 3, 6, 1e-6},
		{"zero", Zero, 7, 0, 0},
		{"nil", nil, 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derivative(tt.f, tt.x, 0, 1, 1, 1)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Derivative = %v, want %v (tol %v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestDerivativeAccuracyAcrossRange(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.37 {
		for _, tm := range []float64{0, 1.5, 100} {
			got := Derivative(sinFunc, x, tm, 1, 1, 1)
			if math.Abs(got-math.Cos(x)) >= 1e-6 {
				t.Fatalf("Derivative(sin, %v) = %v, want %v", x, got, math.Cos(x))
			}
		}
	}
}

func TestDerivativeNonFinite(t *testing.T) {
	inv := func(x, _, _, _, _ float64) float64 { return 1 / x }
	// x-h lands exactly on 0 -> +Inf sample.
	if got := Derivative(inv, DerivativeStep, 0, 1, 1, 1); got != 0 {
		t.Errorf("Derivative(1/x) near pole = %v, want 0", got)
	}
	nan := func(_, _, _, _, _ float64) float64 { return math.NaN() }
	if got := Derivative(nan, 1, 0, 1, 1, 1); got != 0 {
		t.Errorf("Derivative(NaN) = %v, want 0", got)
	}
}

func TestGradient2D(t *testing.T) {
	// f(x, y) = x + 2y, sampled at (x/scale, y/scale).
	lin := func(x, y, _, _, _ float64) float64 { return x + 2*y }
	gx, gy := Gradient2D(lin, 10, 20, 0, 100)
	if math.Abs(gx-0.01) > 1e-9 {
		t.Errorf("gx = %v, want 0.01", gx)
	}
	if math.Abs(gy-0.02) > 1e-9 {
		t.Errorf("gy = %v, want 0.02", gy)
	}

	gx, gy = Gradient2D(nil, 1, 1, 0, 1)
	if gx != 0 || gy != 0 {
		t.Errorf("Gradient2D(nil) = (%v, %v), want (0, 0)", gx, gy)
	}
}

func TestGradient2DUnguarded(t *testing.T) {
	nan := func(_, _, _, _, _ float64) float64 { return math.NaN() }
	gx, _ := Gradient2D(nan, 1, 1, 0, 1)
	if !math.IsNaN(gx) {
		t.Errorf("Gradient2D(NaN) gx = %v, want NaN", gx)
	}
}

func TestOrZero(t *testing.T) {
	f := OrZero(nil)
	if got := f(1, 2, 3, 4, 5); got != 0 {
		t.Errorf("OrZero(nil)(...) = %v, want 0", got)
	}
	g := OrZero(sinFunc)
	if got := g(math.Pi/2, 0, 0, 0, 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("OrZero(sin)(pi/2) = %v, want 1", got)
	}
}

func TestClampAndOr(t *testing.T) {
	if got := Clamp(math.NaN(), -1, 1); got != -1 {
		t.Errorf("Clamp(NaN) = %v, want -1", got)
	}
	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Clamp(5) = %v, want 1", got)
	}
	if got := Or(math.Inf(1), 3); got != 3 {
		t.Errorf("Or(Inf) = %v, want 3", got)
	}
	if got := Or(2, 3); got != 2 {
		t.Errorf("Or(2) = %v, want 2", got)
	}
}
