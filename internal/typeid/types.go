package typeid

// Name is a parsed qualified type name.
type Name struct {
	// Module is empty for bare names.
	Module string
	Name   string
}

// New returns the qualified name of a type named name in module.
func New(module, name string) Name {
	return Name{Module: module, Name: name}
}
