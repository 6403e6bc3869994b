package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

func TestRK4Accuracy(t *testing.T) {
	r := NewRK4()
	x := dynamo.State{1}
	dt := 0.1
	for i := 0; i < 10; i++ {
		x = r.Step(&decay{k: 1}, x, float64(i)*dt, dt)
	}
	if math.Abs(x[0]-math.Exp(-1)) > 1e-6 {
		t.Errorf("x(1) = %v, want %v", x[0], math.Exp(-1))
	}
	if r.Evaluations() != 40 {
		t.Errorf("evaluations = %d, want 40", r.Evaluations())
	}
}

func TestRK4BeatsEuler(t *testing.T) {
	run := func(integ dynamo.Integrator) float64 {
		x := dynamo.State{1}
		for i := 0; i < 20; i++ {
			x = integ.Step(&decay{k: 1}, x, float64(i)*0.05, 0.05)
		}
		return math.Abs(x[0] - math.Exp(-1))
	}
	if rk, eu := run(NewRK4()), run(NewEuler()); rk >= eu {
		t.Errorf("rk4 error %v not below euler error %v", rk, eu)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"euler", false},
		{"rk4", false},
		{"verlet", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integ, err := New(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownIntegrator) {
					t.Errorf("err = %v, want ErrUnknownIntegrator", err)
				}
				return
			}
			if err != nil || integ == nil {
				t.Fatalf("New(%q) = %v, %v", tt.name, integ, err)
			}
		})
	}
	if got := Names(); len(got) != 2 || got[0] != "euler" {
		t.Errorf("Names() = %v", got)
	}
}
