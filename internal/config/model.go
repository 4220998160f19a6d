package config

import "github.com/vk/typeslots/internal/typedesc"

// Model is the format-agnostic representation of a type catalogue.
type Model struct {
	// Types are kept in declaration order: manifest files sorted by path,
	// blocks in file order.
	Types []*TypeDefinition
}

// Find returns the definition declared under key.
func (m *Model) Find(key string) (*TypeDefinition, bool) {
	if m == nil {
		return nil, false
	}
	for _, def := range m.Types {
		if def.Key == key {
			return def, true
		}
	}
	return nil, false
}

// TypeDefinition is one declared built-in type.
type TypeDefinition struct {
	Key    string
	Name   string
	Module string
	// PublishIn overrides the publishing module; nil means Module.
	PublishIn   *string
	Unpublished bool
	// Flags is nil when the manifest relies on the default flags.
	Flags       *typedesc.Flags
	MethodFlags typedesc.MethodFlags
	// Base and Metatype hold type keys; empty means unset.
	Base     string
	Metatype string
	// Slots names the builtin-definition units whose tables make up the
	// declared slot table, in merge order.
	Slots       []string
	Weakrefable bool
	// Source is the manifest file the type was declared in.
	Source string
}

// Options converts the definition into descriptor options. Links to other
// types are resolved by the caller.
func (d *TypeDefinition) Options() []typedesc.Option {
	var opts []typedesc.Option
	if d.Module != "" {
		opts = append(opts, typedesc.WithModule(d.Module))
	}
	if d.PublishIn != nil {
		opts = append(opts, typedesc.WithPublishedIn(*d.PublishIn))
	}
	if d.Unpublished {
		opts = append(opts, typedesc.Unpublished())
	}
	if d.Flags != nil {
		opts = append(opts, typedesc.WithFlags(*d.Flags))
	}
	if d.MethodFlags != typedesc.DefaultMethods {
		opts = append(opts, typedesc.WithMethodFlags(d.MethodFlags))
	}
	return opts
}
