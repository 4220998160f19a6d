package slots

// Builder accumulates slot entries for a new Table. A Builder is single use:
// once Build has been called any further call panics.
type Builder struct {
	entries [numSlots]*Impl
	built   bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) mustBeOpen() {
	if b.built {
		panic("slots: builder used after Build")
	}
}

// Set stores impl for id, replacing only that slot.
func (b *Builder) Set(id ID, impl *Impl) *Builder {
	b.mustBeOpen()
	if !id.Valid() {
		panic("slots: invalid slot id " + id.String())
	}
	if impl == nil {
		panic("slots: nil implementation for " + id.String())
	}
	b.entries[id] = impl
	return b
}

// Merge copies every entry of other into the builder. Entries of other win
// on collision.
func (b *Builder) Merge(other *Table) *Builder {
	b.mustBeOpen()
	for id, impl := range other.All() {
		b.entries[id] = impl
	}
	return b
}

// Override applies the entries of other on top of the builder group by
// group: every group that other touches is first cleared in the builder, so
// members of the group that other leaves unset are not inherited.
func (b *Builder) Override(other *Table) *Builder {
	b.mustBeOpen()
	var touched [numGroups]bool
	for id := range other.All() {
		touched[id.Group()] = true
	}
	for g, hit := range touched {
		if !hit {
			continue
		}
		for _, member := range groupMembers[g] {
			b.entries[member] = other.entries[member]
		}
	}
	return b
}

// Build finalizes the builder into an immutable table.
func (b *Builder) Build() *Table {
	b.mustBeOpen()
	b.built = true
	t := &Table{entries: b.entries}
	for _, impl := range t.entries {
		if impl != nil {
			t.n++
		}
	}
	return t
}
