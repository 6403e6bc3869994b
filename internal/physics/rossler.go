package physics

import (
	"fmt"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

type Rossler struct{ A, B, C float64 }

func NewRossler() *Rossler       { return &Rossler{0.2, 0.2, 5.7} }
func (r *Rossler) StateDim() int { return 3 }

// Derive calculates the Rossler attractor derivatives.
func (r *Rossler) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{-s[1] - s[2], s[0] + r.A*s[1], r.B + s[2]*(s[0]-r.C)}
}

func (r *Rossler) GetParams() map[string]float64 {
	return map[string]float64{"a": r.A, "b": r.B, "c": r.C}
}

func (r *Rossler) SetParam(n string, v float64) error {
	switch n {
	case "a":
		r.A = v
	case "b":
		r.B = v
	case "c":
		r.C = v
	default:
		return fmt.Errorf("rossler %q: %w", n, dynamo.ErrUnknownParameter)
	}
	return nil
}
