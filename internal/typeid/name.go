package typeid

// String serializes the Name into its canonical `module.name` form. Names in
// the builtins module print bare, as print names do.
func (n Name) String() string {
	if n.Module == "" || n.Module == builtinsModule {
		return n.Name
	}
	return n.Module + "." + n.Name
}

// Qualified reports whether the name carries a module.
func (n Name) Qualified() bool {
	return n.Module != ""
}

// Equal reports whether two names denote the same type. A bare name equals
// its builtins-qualified form.
func (n Name) Equal(other Name) bool {
	return n.String() == other.String()
}
