package builtins

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/hcl"
	"github.com/vk/typeslots/internal/registry"
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/typedesc"
	"github.com/vk/typeslots/internal/units"
)

// Well-known type keys.
const (
	RootKey  = "PythonObject"
	ClassKey = "PythonClass"
)

// ManifestDir is the directory of the embedded manifests inside Manifests().
const ManifestDir = "manifest"

//go:embed manifest/*.hcl
var manifestFS embed.FS

// Manifests returns the embedded manifest files.
func Manifests() fs.FS {
	return manifestFS
}

// BuildOptions configures Build.
type BuildOptions struct {
	// Layout overrides the layout derived from the model.
	Layout registry.Layout
	// CheckInvariants enables the registry's debug checks.
	CheckInvariants bool
}

// Build declares every type of model, pins the explicit links and resolves
// the registry. Unknown type or unit references are returned as errors;
// catalogue errors found during resolution panic like any other
// registry.Resolve failure.
func Build(ctx context.Context, model *config.Model, us *units.Units, opts BuildOptions) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	reg := registry.New()

	for _, def := range model.Types {
		if _, exists := reg.Lookup(def.Key); exists {
			return nil, fmt.Errorf("type '%s' is declared twice", def.Key)
		}
		table, err := declaredSlots(def, us)
		if err != nil {
			return nil, err
		}
		reg.Declare(def.Key, def.Name, append(def.Options(), typedesc.WithSlots(table))...)
	}
	logger.Debug("Declared builtin types.", "count", reg.Len())

	for _, def := range model.Types {
		id := reg.MustLookup(def.Key)
		if def.Base != "" {
			base, ok := reg.Lookup(def.Base)
			if !ok {
				return nil, fmt.Errorf("type '%s' (%s): unknown base type '%s'", def.Key, def.Source, def.Base)
			}
			reg.SetBase(id, base)
		}
		if def.Metatype != "" {
			meta, ok := reg.Lookup(def.Metatype)
			if !ok {
				return nil, fmt.Errorf("type '%s' (%s): unknown metatype '%s'", def.Key, def.Source, def.Metatype)
			}
			reg.SetMetatype(id, meta)
		}
	}

	root, ok := reg.Lookup(RootKey)
	if !ok {
		return nil, fmt.Errorf("catalogue does not declare the root type '%s'", RootKey)
	}
	class, ok := reg.Lookup(ClassKey)
	if !ok {
		return nil, fmt.Errorf("catalogue does not declare the class type '%s'", ClassKey)
	}

	layout := opts.Layout
	if layout == nil {
		layout = NewLayout(model)
	}
	reg.Resolve(ctx, registry.Options{
		Root:            root,
		Class:           class,
		Layout:          layout,
		CheckInvariants: opts.CheckInvariants,
	})
	return reg, nil
}

// declaredSlots returns the table of a type's only unit as is, so the
// registry and the unit share it, and merges the tables of several units.
func declaredSlots(def *config.TypeDefinition, us *units.Units) (*slots.Table, error) {
	tables := make([]*slots.Table, 0, len(def.Slots))
	for _, name := range def.Slots {
		u, ok := us.Get(name)
		if !ok {
			return nil, fmt.Errorf("type '%s' (%s): unknown slots unit '%s'", def.Key, def.Source, name)
		}
		tables = append(tables, u.Slots)
	}
	switch len(tables) {
	case 0:
		return slots.Empty(), nil
	case 1:
		return tables[0], nil
	default:
		return slots.MergeAll(tables...), nil
	}
}

// LoadEmbedded loads the embedded manifests.
func LoadEmbedded(ctx context.Context) (*config.Model, error) {
	return hcl.NewLoader().Load(ctx, manifestFS, ManifestDir)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
)

// Default returns the process-wide registry built from the embedded
// manifests. The catalogue is fixed at build time, so any failure panics.
func Default() *registry.Registry {
	defaultOnce.Do(func() {
		ctx := context.Background()
		model, err := LoadEmbedded(ctx)
		if err != nil {
			panic(fmt.Sprintf("builtins: failed to load embedded manifests: %v", err))
		}
		reg, err := Build(ctx, model, Units(), BuildOptions{})
		if err != nil {
			panic(fmt.Sprintf("builtins: failed to build registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
