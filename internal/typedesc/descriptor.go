package typedesc

import (
	"fmt"
	"sync/atomic"

	"github.com/vk/typeslots/internal/slots"
)

// ID is the dense index of a descriptor inside its registry.
type ID int32

// NoID marks an absent link.
const NoID ID = -1

// WeaklistNotApplicable is the weak-reference-list offset of types whose
// instances cannot be weakly referenced.
const WeaklistNotApplicable = -1

// BuiltinsModule is the module whose types print without a module prefix.
const BuiltinsModule = "builtins"

// Descriptor is the registry record of one built-in type.
type Descriptor struct {
	id              ID
	key             string
	name            string
	declaringModule string
	moduleName      string
	printName       string
	flags           Flags
	methodFlags     MethodFlags
	declaredSlots   *slots.Table

	base          ID
	metatype      ID
	computedSlots *slots.Table
	weaklist      int
	frozen        bool

	specialMethods atomic.Pointer[[]any]
}

// ID returns the descriptor's index in its registry.
func (d *Descriptor) ID() ID { return d.id }

// Key returns the identifier the type was declared under.
func (d *Descriptor) Key() string { return d.key }

// Name returns the simple type name.
func (d *Descriptor) Name() string { return d.name }

// DeclaringModule returns the module the type is published in, or "".
func (d *Descriptor) DeclaringModule() string { return d.declaringModule }

// ModuleName returns the module the type reports, or "" when the type is
// not public.
func (d *Descriptor) ModuleName() string { return d.moduleName }

// PrintName returns the module-qualified name used when printing the type.
func (d *Descriptor) PrintName() string { return d.printName }

// Flags returns the categorical flags.
func (d *Descriptor) Flags() Flags { return d.flags }

// IsBase reports whether the type can be subclassed.
func (d *Descriptor) IsBase() bool { return d.flags.IsBase }

// HasInstanceDict reports whether instances carry an attribute dict.
func (d *Descriptor) HasInstanceDict() bool { return d.flags.HasInstanceDict }

// MethodFlags returns the fast-path flags of the type's own declaration.
func (d *Descriptor) MethodFlags() MethodFlags { return d.methodFlags }

// DeclaredSlots returns the slots the type contributes itself.
func (d *Descriptor) DeclaredSlots() *slots.Table { return d.declaredSlots }

// Slots returns the inherited slot table, or nil before resolution.
func (d *Descriptor) Slots() *slots.Table { return d.computedSlots }

// Base returns the base type, or NoID.
func (d *Descriptor) Base() ID { return d.base }

// Metatype returns the type of this type, or NoID before resolution.
func (d *Descriptor) Metatype() ID { return d.metatype }

// WeaklistOffset returns the weak-reference-list offset.
func (d *Descriptor) WeaklistOffset() int { return d.weaklist }

// Frozen reports whether resolution has completed.
func (d *Descriptor) Frozen() bool { return d.frozen }

func (d *Descriptor) String() string { return d.printName }

func (d *Descriptor) mustBeMutable(what string) {
	if d.frozen {
		panic(fmt.Sprintf("typedesc: cannot set %s of resolved type %s", what, d.key))
	}
}

// SetBase links the base type. Only valid before Freeze.
func (d *Descriptor) SetBase(base ID) {
	d.mustBeMutable("base")
	if base == d.id {
		panic(fmt.Sprintf("typedesc: type %s cannot be its own base", d.key))
	}
	d.base = base
}

// SetMetatype links the metatype. Only valid before Freeze.
func (d *Descriptor) SetMetatype(meta ID) {
	d.mustBeMutable("metatype")
	d.metatype = meta
}

// SetComputedSlots stores the inherited slot table. It may be called once.
func (d *Descriptor) SetComputedSlots(t *slots.Table) {
	d.mustBeMutable("slots")
	if d.computedSlots != nil {
		panic(fmt.Sprintf("typedesc: slots of %s computed twice", d.key))
	}
	if t == nil {
		panic(fmt.Sprintf("typedesc: nil slots for %s", d.key))
	}
	d.computedSlots = t
}

// SetWeaklistOffset stores the weak-reference-list offset. Only valid
// before Freeze.
func (d *Descriptor) SetWeaklistOffset(offset int) {
	d.mustBeMutable("weaklist offset")
	d.weaklist = offset
}

// Freeze ends the resolution window.
func (d *Descriptor) Freeze() {
	if d.computedSlots == nil {
		panic(fmt.Sprintf("typedesc: freezing %s before its slots were computed", d.key))
	}
	d.frozen = true
}

// SpecialMethodCache returns the cached special-method handles and whether
// they have been assigned.
func (d *Descriptor) SpecialMethodCache() ([]any, bool) {
	p := d.specialMethods.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// TrySetSpecialMethodCache assigns the cache if it is still unset and
// reports whether this call won. Safe for concurrent use.
func (d *Descriptor) TrySetSpecialMethodCache(cache []any) bool {
	if cache == nil {
		panic(fmt.Sprintf("typedesc: nil special method cache for %s", d.key))
	}
	return d.specialMethods.CompareAndSwap(nil, &cache)
}

// SetSpecialMethodCache assigns the cache. The cache is assigned once per
// process; a second assignment panics.
func (d *Descriptor) SetSpecialMethodCache(cache []any) {
	if !d.TrySetSpecialMethodCache(cache) {
		panic(fmt.Sprintf("typedesc: special method cache of %s already assigned", d.key))
	}
}
