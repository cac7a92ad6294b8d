package cast

import (
	"reflect"
	"sync"

	"github.com/corelang/funl/internal/value"
)

// Entry is a registered host type's untyped bridge, stored so a registry
// keyed by reflect.Type can hold bridges for arbitrarily many host types
// without each registration needing its own generic instantiation site.
type Entry struct {
	ToValue   func(a interface{}) value.V
	FromValue func(v value.V) (interface{}, error)
}

// Registry lets a host register Cast instances for its own structs
// without recompiling this module, mirroring how the teacher's
// internal/ext package lets a host declare Go bindings in funxy.yaml
// without touching the evaluator itself — here the registration surface
// is a plain generic-keyed map rather than codegen, since the host is
// linking against this module directly rather than spawning a build.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]Entry)}
}

// Register installs c under A's reflect.Type.
func Register[A any](r *Registry, c Cast[A]) {
	var zero A
	t := reflect.TypeOf(zero)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[t] = Entry{
		ToValue: func(a interface{}) value.V { return c.ToValue(a.(A)) },
		FromValue: func(v value.V) (interface{}, error) {
			a, err := c.FromValue(v)
			return a, err
		},
	}
}

// Lookup returns the Entry registered for t, if any.
func (r *Registry) Lookup(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[t]
	return e, ok
}
