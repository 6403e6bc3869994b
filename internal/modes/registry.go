package modes

import (
	"fmt"

	"github.com/san-kum/synesthetica/internal/engine"
)

var variants = map[string]func() map[string]engine.Variant{
	"fiber":          fiberVariants,
	"marbleFlow":     marbleVariants,
	"fluidField":     fluidVariants,
	"neural":         neuralVariants,
	"origami":        origamiVariants,
	"quantum":        quantumVariants,
	"crystal":        crystalVariants,
	"morph":          morphVariants,
	"synapticGrowth": synapticVariants,
	"eventGrowth":    eventVariants,
	"phase":          phaseVariants,
	"graph":          graphVariants,
	"hyperbolic":     hyperbolicVariants,
	"zeta":           zetaVariants,
	"homology":       homologyVariants,
	"attractor":      attractorVariants,
}

// Register adds every catalog mode to reg in menu order.
func Register(reg *engine.Registry) error {
	for _, m := range Catalog {
		build, ok := variants[m.ID]
		if !ok {
			return fmt.Errorf("mode %s has no implementation: %w", m.ID, engine.ErrUnknownMode)
		}
		if err := reg.Register(m, build()); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns a fresh registry holding the full catalog.
func Registry() *engine.Registry {
	reg := engine.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
