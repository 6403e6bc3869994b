package evaluator

import (
	"errors"
	"math"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		src           string
		x, t, a, b, c float64
		want          float64
	}{
		{"a * sin(b * x + t)", math.Pi / 2, 0, 2, 1, 0, 2},
		{"x * x + t", 3, 1, 0, 0, 0, 10},
		{"x ^ 2", 4, 0, 0, 0, 0, 16},
		{"a * exp(-b * abs(x))", 0, 0, 3, 1, 0, 3},
		{"sqrt(x*x + b*b)", 3, 0, 0, 4, 0, 5},
		{"x > 0 ? a : -a", 1, 0, 2, 0, 0, 2},
		{"x > 0 ? a : -a", -1, 0, 2, 0, 0, -2},
		{"c * PI", 0, 0, 0, 0, 1, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.src, err)
			}
			got := f(tt.x, tt.t, tt.a, tt.b, tt.c)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("f(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompileBlankIsZero(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n"} {
		f, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", src, err)
		}
		if got := f(1, 2, 3, 4, 5); got != 0 {
			t.Errorf("Compile(%q)(...) = %v, want 0", src, got)
		}
	}
}

func TestCompileFailureReturnsNil(t *testing.T) {
	for _, src := range []string{"sin(", "x +* 2", "unknownFn(x)"} {
		f, err := Compile(src)
		if err == nil {
			t.Errorf("Compile(%q) expected error", src)
		}
		if f != nil {
			t.Errorf("Compile(%q) expected nil Func", src)
		}
		if got := OrZero(f)(1, 1, 1, 1, 1); got != 0 {
			t.Errorf("OrZero(failed)(...) = %v, want 0", got)
		}
	}
}

func TestCompileDivisionByZeroIsInfinite(t *testing.T) {
	f, err := Compile("a / x")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if got := f(0, 0, 1, 0, 0); !math.IsInf(got, 1) {
		t.Errorf("a/x at 0 = %v, want +Inf", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(""); !errors.Is(err, ErrEmptyExpression) {
		t.Errorf("Validate(\"\") = %v, want ErrEmptyExpression", err)
	}
	if err := Validate("cos(x)"); err != nil {
		t.Errorf("Validate(cos(x)) = %v, want nil", err)
	}
}
