package engine

import (
	"fmt"
	"slices"
)

// DefaultAlgorithm resolves to the first algorithm a mode declares.
const DefaultAlgorithm = "default"

type variantKey struct{ mode, alg string }

// Registry maps (mode, algorithm) pairs to variants, keeping modes in
// registration order.
type Registry struct {
	modes    []ModeDescriptor
	index    map[string]int
	variants map[variantKey]Variant
}

func NewRegistry() *Registry {
	return &Registry{
		index:    make(map[string]int),
		variants: make(map[variantKey]Variant),
	}
}

// Register adds a mode. Every declared algorithm needs a variant.
func (r *Registry) Register(m ModeDescriptor, variants map[string]Variant) error {
	if _, ok := r.index[m.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMode, m.ID)
	}
	if len(m.Algorithms) == 0 {
		return fmt.Errorf("mode %s declares no algorithms: %w", m.ID, ErrUnknownAlgorithm)
	}
	for _, a := range m.Algorithms {
		if variants[a.ID] == nil {
			return fmt.Errorf("mode %s: no variant for algorithm %s: %w", m.ID, a.ID, ErrUnknownAlgorithm)
		}
	}
	r.index[m.ID] = len(r.modes)
	r.modes = append(r.modes, m)
	for _, a := range m.Algorithms {
		r.variants[variantKey{m.ID, a.ID}] = variants[a.ID]
	}
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (r *Registry) MustRegister(m ModeDescriptor, variants map[string]Variant) {
	if err := r.Register(m, variants); err != nil {
		panic(err)
	}
}

func (r *Registry) Modes() []ModeDescriptor { return slices.Clone(r.modes) }

func (r *Registry) ModeIDs() []string {
	ids := make([]string, len(r.modes))
	for i, m := range r.modes {
		ids[i] = m.ID
	}
	return ids
}

func (r *Registry) Mode(id string) (ModeDescriptor, error) {
	i, ok := r.index[id]
	if !ok {
		return ModeDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}
	return r.modes[i], nil
}

// Algorithm resolves alg within mode, mapping DefaultAlgorithm and the
// empty id to the first declared algorithm.
func (r *Registry) Algorithm(mode, alg string) (AlgorithmDescriptor, error) {
	m, err := r.Mode(mode)
	if err != nil {
		return AlgorithmDescriptor{}, err
	}
	for _, a := range m.Algorithms {
		if a.ID == alg {
			return a, nil
		}
	}
	if alg == DefaultAlgorithm || alg == "" {
		return m.Algorithms[0], nil
	}
	return AlgorithmDescriptor{}, fmt.Errorf("%w: %q in mode %s", ErrUnknownAlgorithm, alg, mode)
}

// Lookup returns the variant for a pair and its resolved descriptor.
func (r *Registry) Lookup(mode, alg string) (Variant, AlgorithmDescriptor, error) {
	a, err := r.Algorithm(mode, alg)
	if err != nil {
		return nil, AlgorithmDescriptor{}, err
	}
	return r.variants[variantKey{mode, a.ID}], a, nil
}

// Defaults returns the declared defaults of a pair.
func (r *Registry) Defaults(mode, alg string) (Params, error) {
	a, err := r.Algorithm(mode, alg)
	if err != nil {
		return nil, err
	}
	return a.Defaults(), nil
}

// Next returns the mode after id in registration order, wrapping around.
func (r *Registry) Next(id string, step int) string {
	if len(r.modes) == 0 {
		return ""
	}
	i, ok := r.index[id]
	if !ok {
		return r.modes[0].ID
	}
	n := len(r.modes)
	return r.modes[((i+step)%n+n)%n].ID
}
