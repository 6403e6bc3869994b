package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

type decay struct{ k float64 }

func (d *decay) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{-d.k * x[0]}
}

func (d *decay) StateDim() int { return 1 }

func TestEulerSingleStep(t *testing.T) {
	got := NewEuler().Step(&decay{k: 2}, dynamo.State{1}, 0, 0.1)
	if math.Abs(got[0]-0.8) > 1e-12 {
		t.Errorf("Step = %v, want 0.8", got[0])
	}
}

func TestEulerConvergesToExponential(t *testing.T) {
	tests := []struct {
		dt  float64
		tol float64
	}{
		{0.01, 1e-2},
		{0.001, 1e-3},
	}

	for _, tt := range tests {
		x := dynamo.State{1}
		e := NewEuler()
		steps := int(1 / tt.dt)
		for i := 0; i < steps; i++ {
			x = e.Step(&decay{k: 1}, x, float64(i)*tt.dt, tt.dt)
		}
		if math.Abs(x[0]-math.Exp(-1)) > tt.tol {
			t.Errorf("dt=%v: x(1) = %v, want %v", tt.dt, x[0], math.Exp(-1))
		}
	}
}

func TestEulerDoesNotMutateInput(t *testing.T) {
	x := dynamo.State{1}
	NewEuler().Step(&decay{k: 1}, x, 0, 0.5)
	if x[0] != 1 {
		t.Errorf("input mutated: %v", x[0])
	}
}
