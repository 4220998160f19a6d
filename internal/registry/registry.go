package registry

import (
	"fmt"
	"iter"

	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/typedesc"
)

// Registry is an arena of type descriptors.
type Registry struct {
	descriptors []*typedesc.Descriptor
	byKey       map[string]typedesc.ID
	byName      map[qualifiedName]typedesc.ID
	root        typedesc.ID
	class       typedesc.ID
	resolved    bool
}

type qualifiedName struct {
	module string
	name   string
}

// New creates an empty, unresolved registry.
func New() *Registry {
	return &Registry{
		byKey: make(map[string]typedesc.ID),
		root:  typedesc.NoID,
		class: typedesc.NoID,
	}
}

func (r *Registry) mustBeOpen(op string) {
	if r.resolved {
		panic(fmt.Sprintf("registry: %s after Resolve", op))
	}
}

// Declare appends a new type and returns its id. Keys must be unique.
func (r *Registry) Declare(key, name string, opts ...typedesc.Option) typedesc.ID {
	r.mustBeOpen("Declare")
	if key == "" {
		panic("registry: type key must not be empty")
	}
	if _, exists := r.byKey[key]; exists {
		panic(fmt.Sprintf("registry: type with key '%s' already declared", key))
	}
	id := typedesc.ID(len(r.descriptors))
	d := typedesc.New(id, key, name, opts...)
	r.checkLink(d.Key(), "base", d.Base())
	r.checkLink(d.Key(), "metatype", d.Metatype())
	r.descriptors = append(r.descriptors, d)
	r.byKey[key] = id
	return id
}

func (r *Registry) checkLink(key, what string, id typedesc.ID) {
	if id != typedesc.NoID && !r.valid(id) {
		panic(fmt.Sprintf("registry: %s of %s refers to unknown id %d", what, key, id))
	}
}

// SetBase pins an explicit base type before resolution.
func (r *Registry) SetBase(id, base typedesc.ID) {
	r.mustBeOpen("SetBase")
	d := r.Get(id)
	r.checkLink(d.Key(), "base", base)
	d.SetBase(base)
}

// SetMetatype pins an explicit metatype before resolution.
func (r *Registry) SetMetatype(id, meta typedesc.ID) {
	r.mustBeOpen("SetMetatype")
	d := r.Get(id)
	r.checkLink(d.Key(), "metatype", meta)
	d.SetMetatype(meta)
}

func (r *Registry) valid(id typedesc.ID) bool {
	return id >= 0 && int(id) < len(r.descriptors)
}

// Get returns the descriptor with the given id. Ids come from this registry,
// so an unknown id is a programming error.
func (r *Registry) Get(id typedesc.ID) *typedesc.Descriptor {
	if !r.valid(id) {
		panic(fmt.Sprintf("registry: unknown type id %d", id))
	}
	return r.descriptors[id]
}

// Lookup returns the id declared under key.
func (r *Registry) Lookup(key string) (typedesc.ID, bool) {
	id, ok := r.byKey[key]
	return id, ok
}

// MustLookup returns the id declared under key and panics when unknown.
func (r *Registry) MustLookup(key string) typedesc.ID {
	id, ok := r.byKey[key]
	if !ok {
		panic("registry: unknown type " + key)
	}
	return id
}

// ByName returns the type reporting the given module and name. An empty
// module matches types without a module name. Only available after Resolve.
func (r *Registry) ByName(module, name string) (*typedesc.Descriptor, bool) {
	if !r.resolved {
		return nil, false
	}
	id, ok := r.byName[qualifiedName{module: module, name: name}]
	if !ok {
		return nil, false
	}
	return r.descriptors[id], true
}

// Len returns the number of declared types.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// All yields every descriptor in declaration order.
func (r *Registry) All() iter.Seq2[typedesc.ID, *typedesc.Descriptor] {
	return func(yield func(typedesc.ID, *typedesc.Descriptor) bool) {
		for i, d := range r.descriptors {
			if !yield(typedesc.ID(i), d) {
				return
			}
		}
	}
}

// Resolved reports whether Resolve has completed.
func (r *Registry) Resolved() bool {
	return r.resolved
}

// Root returns the root of the base forest, or NoID before resolution.
func (r *Registry) Root() typedesc.ID {
	return r.root
}

// Class returns the designated metatype of the root, or NoID before
// resolution.
func (r *Registry) Class() typedesc.ID {
	return r.class
}

// Slots returns the computed slot table of a type.
func (r *Registry) Slots(id typedesc.ID) *slots.Table {
	return r.Get(id).Slots()
}

// Base returns the base descriptor of a type, or nil for the root.
func (r *Registry) Base(id typedesc.ID) *typedesc.Descriptor {
	base := r.Get(id).Base()
	if base == typedesc.NoID {
		return nil
	}
	return r.descriptors[base]
}

// Metatype returns the metatype descriptor of a type, or nil before
// resolution.
func (r *Registry) Metatype(id typedesc.ID) *typedesc.Descriptor {
	meta := r.Get(id).Metatype()
	if meta == typedesc.NoID {
		return nil
	}
	return r.descriptors[meta]
}

// IsSubtype reports whether sub is super or inherits from it.
func (r *Registry) IsSubtype(sub, super typedesc.ID) bool {
	for id, hops := sub, 0; id != typedesc.NoID; id, hops = r.Get(id).Base(), hops+1 {
		if id == super {
			return true
		}
		if hops > len(r.descriptors) {
			panic(&ConfigError{Reason: "base chain of " + r.Get(sub).Key() + " does not terminate"})
		}
	}
	return false
}

// Ancestors returns the base chain of a type from its direct base up to the
// root.
func (r *Registry) Ancestors(id typedesc.ID) []*typedesc.Descriptor {
	var out []*typedesc.Descriptor
	for base := r.Base(id); base != nil; base = r.Base(base.ID()) {
		out = append(out, base)
		if len(out) > len(r.descriptors) {
			panic(&ConfigError{Reason: "base chain of " + r.Get(id).Key() + " does not terminate"})
		}
	}
	return out
}
