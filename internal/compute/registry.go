package compute

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend indicates a lookup for a backend name that was never
// registered.
var ErrUnknownBackend = errors.New("compute: unknown backend")

// Registry holds the set of platforms available to this process. It is
// constructed once at startup and passed to whatever creates contexts;
// there is no package-global active backend.
type Registry struct {
	backends map[string]Backend
	order    []string
}

func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[string]Backend)}
	for _, b := range backends {
		if _, ok := r.backends[b.Name()]; ok {
			continue
		}
		r.backends[b.Name()] = b
		r.order = append(r.order, b.Name())
	}
	return r
}

// DefaultRegistry registers the platforms compiled into this binary.
func DefaultRegistry() *Registry {
	return NewRegistry(NewReference(), NewCUDA())
}

func (r *Registry) Lookup(name string) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// Names returns backend names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Default returns the first available backend, preferring registration
// order. The reference backend is always available, so a registry built
// by DefaultRegistry never returns nil.
func (r *Registry) Default() Backend {
	for _, name := range r.order {
		if b := r.backends[name]; b.Available() {
			return b
		}
	}
	return nil
}
