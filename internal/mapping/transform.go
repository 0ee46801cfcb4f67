package mapping

import (
	"fmt"
	"sort"
)

// Func is a value transform applied to every key value of a mapped channel.
type Func func(float64) float64

// TransformDef defines a custom affine transform in the mapping file.
// The resulting function is value*scale + offset.
type TransformDef struct {
	Name string `yaml:"name"`

	// Scale factor. Defaults to 1 when omitted.
	Scale *float64 `yaml:"scale,omitempty"`

	// Offset added after scaling.
	Offset float64 `yaml:"offset,omitempty"`

	Description string `yaml:"description,omitempty"`
}

// Registry holds named value transforms and provides lookup.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates a registry preloaded with the builtin transforms.
// "negate" mirrors the classic flip of channels whose control travels in
// the negative direction of its driving expression.
func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]Func{
			"negate": func(v float64) float64 { return -v },
		},
	}
}

// BuildRegistry builds a registry from the transform definitions of a
// mapping file, rejecting duplicates and builtin-name collisions.
func BuildRegistry(defs []TransformDef) (*Registry, error) {
	registry := NewRegistry()

	for i := range defs {
		def := defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("transform %d has no name", i)
		}

		if registry.Has(def.Name) {
			return nil, fmt.Errorf("duplicate transform %q", def.Name)
		}

		scale := 1.0
		if def.Scale != nil {
			scale = *def.Scale
		}

		offset := def.Offset
		registry.Register(def.Name, func(v float64) float64 {
			return v*scale + offset
		})
	}

	return registry, nil
}

// Register adds a transform under name, replacing any previous one.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Get returns a transform by name.
func (r *Registry) Get(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns all transform names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
