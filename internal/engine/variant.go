package engine

import (
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/render"
)

// State is the mode-owned simulation value threaded from Init through
// every Render. Only the variant that created it looks inside.
type State any

type empty struct{}

// Empty is the state of variants that carry nothing between frames.
var Empty State = empty{}

// Bounds is the drawable extent in device units.
type Bounds struct{ W, H float64 }

type Rotation struct{ X, Y float64 }

// InitContext carries everything Init may depend on. Equal contexts
// produce equal states.
type InitContext struct {
	Bounds    Bounds
	Params    Params
	Algorithm string
	Seed      uint64
}

// Frame is one render call. Surface is already centered, zoomed and
// rotated by the driver.
type Frame struct {
	Surface   render.Surface
	Time      float64
	Eval      evaluator.Func
	Params    Params
	Bounds    Bounds
	Zoom      float64
	Rotation  Rotation
	Algorithm string
}

// Variant is one algorithm of one mode.
type Variant interface {
	Init(ctx InitContext) State
	Render(f *Frame, s State)
}

// Stateless adapts a closed-form renderer into a Variant with Empty state.
type Stateless func(f *Frame)

func (Stateless) Init(InitContext) State     { return Empty }
func (r Stateless) Render(f *Frame, _ State) { r(f) }

// VariantFunc builds a Variant from a pair of functions.
type VariantFunc[S any] struct {
	InitFn   func(ctx InitContext) S
	RenderFn func(f *Frame, s S)
}

func (v VariantFunc[S]) Init(ctx InitContext) State { return v.InitFn(ctx) }

// Render ignores states of another type, such as Empty after a failed init.
func (v VariantFunc[S]) Render(f *Frame, s State) {
	if st, ok := s.(S); ok {
		v.RenderFn(f, st)
	}
}
