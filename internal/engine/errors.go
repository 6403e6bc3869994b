package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode      = errors.New("engine: unknown mode")
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")
	ErrDuplicateMode    = errors.New("engine: mode already registered")
	// ErrNoSelection is returned when a session is asked to render before
	// a mode has been selected.
	ErrNoSelection = errors.New("engine: no mode selected")
)

// RenderError reports a variant that failed during init or render. The
// frame is skipped; the session keeps running.
type RenderError struct {
	Mode      string
	Algorithm string
	Phase     string
	Time      float64
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s/%s %s at t=%.3f: %v", e.Mode, e.Algorithm, e.Phase, e.Time, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
