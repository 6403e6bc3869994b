package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/synesthetica/internal/dynamo"
)

var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

var constructors = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
}

// New returns a fresh integrator by name.
func New(name string) (dynamo.Integrator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownIntegrator, name, Names())
	}
	return ctor(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
