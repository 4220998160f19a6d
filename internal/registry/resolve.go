package registry

import (
	"context"
	"errors"

	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/forest"
	"github.com/vk/typeslots/internal/typedesc"
)

// Layout supplies instance-layout facts the registry does not own.
type Layout interface {
	WeaklistOffset(d *typedesc.Descriptor) int
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(d *typedesc.Descriptor) int

// WeaklistOffset calls f(d).
func (f LayoutFunc) WeaklistOffset(d *typedesc.Descriptor) int {
	return f(d)
}

// Options configures Resolve.
type Options struct {
	// Root is the only type without a base.
	Root typedesc.ID
	// Class is the metatype of every type that does not inherit another one.
	Class typedesc.ID
	// Layout provides weak-reference-list offsets. When nil every type keeps
	// typedesc.WeaklistNotApplicable.
	Layout Layout
	// CheckInvariants enables the (module, name) uniqueness check.
	CheckInvariants bool
}

// Resolve links, linearizes and freezes every declared type. It runs once;
// any configuration error panics.
func (r *Registry) Resolve(ctx context.Context, opts Options) {
	r.mustBeOpen("Resolve")
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving type registry.", "types", len(r.descriptors), "check_invariants", opts.CheckInvariants)

	if !r.valid(opts.Root) {
		configPanic("root type is not declared")
	}
	if !r.valid(opts.Class) {
		configPanic("class type is not declared")
	}
	root := r.descriptors[opts.Root]
	if root.Base() != typedesc.NoID {
		configPanic("root type %s must not declare a base", root.Key())
	}

	if opts.CheckInvariants {
		r.checkUniqueNames()
	}

	// Phase A: every type but the root derives from the root by default.
	for id, d := range r.All() {
		if d.Base() == typedesc.NoID && id != opts.Root {
			d.SetBase(opts.Root)
		}
	}
	logger.Debug("Base links defaulted.", "root", root.Key())

	order := r.forestOrder()

	// Phase B: metatypes flow from base to subtype, parents first.
	if root.Metatype() == typedesc.NoID {
		root.SetMetatype(opts.Class)
	}
	for _, id := range order {
		d := r.descriptors[id]
		if d.Metatype() != typedesc.NoID || d.Base() == typedesc.NoID {
			continue
		}
		d.SetMetatype(r.descriptors[d.Base()].Metatype())
	}
	for _, d := range r.descriptors {
		if d.Metatype() == typedesc.NoID {
			d.SetMetatype(opts.Class)
		}
	}
	logger.Debug("Metatypes propagated.", "class", r.descriptors[opts.Class].Key())

	// Phase C: inherited slots, each table computed once from its finished
	// parent.
	for _, id := range order {
		d := r.descriptors[id]
		if d.Base() == typedesc.NoID {
			d.SetComputedSlots(d.DeclaredSlots())
			continue
		}
		base := r.descriptors[d.Base()]
		d.SetComputedSlots(base.Slots().Copy().Override(d.DeclaredSlots()).Build())
	}
	logger.Debug("Slot tables linearized.")

	// Phase D: layout facts.
	if opts.Layout != nil {
		for _, d := range r.descriptors {
			d.SetWeaklistOffset(opts.Layout.WeaklistOffset(d))
		}
		logger.Debug("Weak-reference offsets assigned.")
	}

	r.byName = make(map[qualifiedName]typedesc.ID, len(r.descriptors))
	for id, d := range r.All() {
		qn := qualifiedName{module: d.ModuleName(), name: d.Name()}
		if _, exists := r.byName[qn]; !exists {
			r.byName[qn] = id
		}
		d.Freeze()
	}
	r.root = opts.Root
	r.class = opts.Class
	r.resolved = true
	logger.Debug("Type registry resolved.", "types", len(r.descriptors))
}

func (r *Registry) forestOrder() []typedesc.ID {
	parents := make([]int, len(r.descriptors))
	for i, d := range r.descriptors {
		parents[i] = int(d.Base())
	}
	order, err := forest.Order(parents)
	if err != nil {
		var cycleErr *forest.CycleError
		if errors.As(err, &cycleErr) {
			cycleErr.Names = func(i int) string { return r.descriptors[i].Key() }
			panic(cycleErr)
		}
		configPanic("%v", err)
	}
	ids := make([]typedesc.ID, len(order))
	for i, n := range order {
		ids[i] = typedesc.ID(n)
	}
	return ids
}

func (r *Registry) checkUniqueNames() {
	seen := make(map[qualifiedName]*typedesc.Descriptor, len(r.descriptors))
	for _, d := range r.descriptors {
		qn := qualifiedName{module: d.ModuleName(), name: d.Name()}
		if prev, exists := seen[qn]; exists {
			panic(&DuplicateNameError{Module: qn.module, Name: qn.name, First: prev.Key(), Second: d.Key()})
		}
		seen[qn] = d
	}
}
