package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

// Session owns the active (mode, algorithm, params, state). State is
// rebuilt whenever the pair changes and on every SetParams call, even
// when the values are unchanged, so dragging a slider restarts inertial
// simulations. A new state is fully built before it replaces the old one.
type Session struct {
	reg    *Registry
	logger *log.Logger
	seed   uint64

	mode    string
	alg     AlgorithmDescriptor
	variant Variant
	params  Params
	bounds  Bounds
	state   State
	inits   int

	lastErr error
}

func NewSession(reg *Registry, logger *log.Logger, seed uint64) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{reg: reg, logger: logger, seed: seed, state: Empty}
}

// Select activates a (mode, algorithm) pair. Selecting the active pair
// again keeps the current state.
func (s *Session) Select(mode, alg string, bounds Bounds) error {
	v, desc, err := s.reg.Lookup(mode, alg)
	if err != nil {
		return err
	}
	s.bounds = bounds
	if s.variant != nil && mode == s.mode && desc.ID == s.alg.ID {
		return nil
	}
	s.mode, s.alg, s.variant = mode, desc, v
	s.reinit()
	return nil
}

// Switch activates a (mode, algorithm) pair with a new parameter set and
// builds its state once. On error nothing changes.
func (s *Session) Switch(mode, alg string, p Params, bounds Bounds) error {
	v, desc, err := s.reg.Lookup(mode, alg)
	if err != nil {
		return err
	}
	s.bounds = bounds
	s.params = p.Clone()
	s.mode, s.alg, s.variant = mode, desc, v
	s.reinit()
	return nil
}

// SetParams replaces the user parameter set and rebuilds the state. The
// caller's map is copied, never modified.
func (s *Session) SetParams(p Params) {
	s.params = p.Clone()
	if s.variant != nil {
		s.reinit()
	}
}

// SetParam changes one value, which counts as a parameter edit.
func (s *Session) SetParam(id string, v float64) {
	p := s.params.Clone()
	p[id] = v
	s.SetParams(p)
}

// Resize updates the bounds passed to frames. The state is kept.
func (s *Session) Resize(b Bounds) { s.bounds = b }

// Reinit rebuilds the state from the current inputs.
func (s *Session) Reinit() {
	if s.variant != nil {
		s.reinit()
	}
}

// Effective returns the user params overlaid on the declared defaults.
func (s *Session) Effective() Params { return s.params.Merge(s.alg.Defaults()) }

func (s *Session) reinit() {
	ctx := InitContext{Bounds: s.bounds, Params: s.Effective(), Algorithm: s.alg.ID, Seed: s.seed}
	next, err := s.safeInit(ctx)
	if err != nil {
		s.lastErr = err
		s.logger.Warn("init failed, using empty state", "err", err)
		next = Empty
	}
	s.state = next
	s.inits++
	s.logger.Debug("state rebuilt", "mode", s.mode, "algorithm", s.alg.ID, "count", s.inits)
}

func (s *Session) safeInit(ctx InitContext) (st State, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Mode: s.mode, Algorithm: s.alg.ID, Phase: "init", Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	st = s.variant.Init(ctx)
	if st == nil {
		st = Empty
	}
	return st, nil
}

// Render draws one frame. Surface, time, evaluator, zoom and rotation
// come from f; the session fills in state, params and algorithm. A
// variant that panics has its frame skipped and the failure returned.
func (s *Session) Render(f *Frame) (err error) {
	if s.variant == nil {
		return ErrNoSelection
	}
	f.Eval = evaluator.OrZero(f.Eval)
	f.Params = s.Effective()
	f.Algorithm = s.alg.ID
	if f.Bounds == (Bounds{}) {
		f.Bounds = s.bounds
	}

	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Mode: s.mode, Algorithm: s.alg.ID, Phase: "render", Time: f.Time, Err: fmt.Errorf("panic: %v", r)}
			s.lastErr = err
			s.logger.Warn("frame skipped", "err", err)
		}
	}()
	s.variant.Render(f, s.state)
	return nil
}

func (s *Session) Mode() string                   { return s.mode }
func (s *Session) Algorithm() AlgorithmDescriptor { return s.alg }
func (s *Session) Params() Params                 { return s.params.Clone() }
func (s *Session) State() State                   { return s.state }
func (s *Session) Bounds() Bounds                 { return s.bounds }
func (s *Session) Seed() uint64                   { return s.seed }

// Inits counts state rebuilds since the session was created.
func (s *Session) Inits() int { return s.inits }

// LastError returns the most recent init or render failure.
func (s *Session) LastError() error { return s.lastErr }
