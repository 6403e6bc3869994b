package engine

import (
	"maps"
	"slices"
)

// Params maps parameter ids to values. Ids a variant does not declare are
// ignored; values are used as given, without range checks.
type Params map[string]float64

// Get returns the value for id, or def when id is absent. An explicit
// zero is returned as zero.
func (p Params) Get(id string, def float64) float64 {
	if v, ok := p[id]; ok {
		return v
	}
	return def
}

// Int is Get truncated to an int.
func (p Params) Int(id string, def int) int {
	return int(p.Get(id, float64(def)))
}

// Clone returns an independent copy. A nil Params clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Merge returns p overlaid on base; neither input is modified.
func (p Params) Merge(base Params) Params {
	out := base.Clone()
	maps.Copy(out, p)
	return out
}

// Keys returns the ids in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// ParamDecl declares one tunable parameter of an algorithm.
type ParamDecl struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
}

type AlgorithmDescriptor struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []ParamDecl `json:"params" yaml:"params"`
}

// Defaults returns the declared default of every parameter.
func (a AlgorithmDescriptor) Defaults() Params {
	p := make(Params, len(a.Params))
	for _, d := range a.Params {
		p[d.ID] = d.Default
	}
	return p
}

// Param looks up a declaration by id.
func (a AlgorithmDescriptor) Param(id string) (ParamDecl, bool) {
	for _, d := range a.Params {
		if d.ID == id {
			return d, true
		}
	}
	return ParamDecl{}, false
}

type ModeDescriptor struct {
	ID          string                `json:"id" yaml:"id"`
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Algorithms  []AlgorithmDescriptor `json:"algorithms" yaml:"algorithms"`
}
