package typedesc

import "github.com/vk/typeslots/internal/slots"

// declaration collects constructor arguments before the canonical
// constructor runs.
type declaration struct {
	publishedIn  string
	publishedSet bool
	unpublished  bool
	module       string
	flags        *Flags
	methodFlags  MethodFlags
	slots        *slots.Table
	base         ID
	metatype     ID
}

// Option customizes a descriptor at declaration time.
type Option func(*declaration)

// WithModule sets the module the type reports and, unless overridden, the
// module it is published in.
func WithModule(module string) Option {
	return func(d *declaration) { d.module = module }
}

// WithPublishedIn sets a publishing module that differs from the reported one.
func WithPublishedIn(module string) Option {
	return func(d *declaration) {
		d.publishedIn = module
		d.publishedSet = true
	}
}

// Unpublished declares a type that is not exposed by any module even though
// it reports one.
func Unpublished() Option {
	return func(d *declaration) { d.unpublished = true }
}

// WithFlags sets the categorical flags.
func WithFlags(f Flags) Option {
	return func(d *declaration) { d.flags = &f }
}

// WithMethodFlags sets the fast-path method flags.
func WithMethodFlags(f MethodFlags) Option {
	return func(d *declaration) { d.methodFlags = f }
}

// WithSlots sets the declared slot table.
func WithSlots(t *slots.Table) Option {
	return func(d *declaration) { d.slots = t }
}

// WithBase pins an explicit base type.
func WithBase(base ID) Option {
	return func(d *declaration) { d.base = base }
}

// WithMetatype pins an explicit metatype.
func WithMetatype(meta ID) Option {
	return func(d *declaration) { d.metatype = meta }
}

// New declares an unresolved descriptor. Without WithFlags, a type with a
// module is public and subclassable without an instance dict; a type without
// one is private.
func New(id ID, key, name string, opts ...Option) *Descriptor {
	decl := declaration{base: NoID, metatype: NoID}
	for _, opt := range opts {
		opt(&decl)
	}

	flags := PrivateBaseWithoutDict
	if decl.flags != nil {
		flags = *decl.flags
	} else if decl.module != "" {
		flags = PublicBaseWithoutDict
	}

	publishedIn := decl.module
	if decl.publishedSet {
		publishedIn = decl.publishedIn
	}
	if decl.unpublished {
		publishedIn = ""
	}

	declared := decl.slots
	if declared == nil {
		declared = slots.Empty()
	}

	return newDescriptor(id, key, name, publishedIn, decl.module, flags, decl.methodFlags, declared, decl.base, decl.metatype)
}

// newDescriptor is the canonical constructor every declaration goes through.
func newDescriptor(id ID, key, name, publishedIn, module string, flags Flags, methodFlags MethodFlags, declared *slots.Table, base, meta ID) *Descriptor {
	d := &Descriptor{
		id:              id,
		key:             key,
		name:            name,
		declaringModule: publishedIn,
		flags:           flags,
		methodFlags:     methodFlags,
		declaredSlots:   declared,
		base:            base,
		metatype:        meta,
		weaklist:        WeaklistNotApplicable,
	}
	if flags.IsPublic {
		d.moduleName = module
	}
	if module != "" && module != BuiltinsModule {
		d.printName = module + "." + name
	} else {
		d.printName = name
	}
	return d
}
