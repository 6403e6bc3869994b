package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestStateOps(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 1 {
		t.Errorf("Clone aliases original: s[0] = %v", s[0])
	}
	if got := s.Add(State{1, 1}); got[0] != 2 || got[1] != 3 || got[2] != 3 {
		t.Errorf("Add = %v, want [2 3 3]", got)
	}
	if got := s.Scale(2); got[2] != 6 {
		t.Errorf("Scale(2)[2] = %v, want 6", got[2])
	}
	if got := (State{3, 4}).Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(1, 0.1, State{1, 2}); err != nil {
		t.Errorf("Check(valid) = %v, want nil", err)
	}
	err := Check(3, 0.3, State{1, math.NaN()})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Check(NaN) = %v, want ErrInvalidState", err)
	}
	var simErr *SimulationError
	if !errors.As(err, &simErr) || simErr.Step != 3 {
		t.Errorf("expected SimulationError at step 3, got %v", err)
	}
}
