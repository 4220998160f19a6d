package app

import (
	"errors"
	"fmt"

	"github.com/vk/typeslots/internal/typedesc"
	"github.com/vk/typeslots/internal/typeid"
)

// ErrUnknownType is returned when a selector matches no type.
var ErrUnknownType = errors.New("unknown type")

// lookup resolves a selector. Type keys win; otherwise the selector is read
// as a qualified name, and a bare name is looked up in builtins first and
// then among the types without a module.
func (a *App) lookup(selector string) (*typedesc.Descriptor, error) {
	if id, ok := a.registry.Lookup(selector); ok {
		return a.registry.Get(id), nil
	}
	name, err := typeid.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownType, selector, err)
	}
	modules := []string{name.Module}
	if !name.Qualified() {
		modules = []string{typedesc.BuiltinsModule, ""}
	}
	for _, module := range modules {
		if d, ok := a.registry.ByName(module, name.Name); ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, selector)
}
