package slots

import (
	"iter"
	"strings"
)

// Impl is a reference to the code implementing a slot. Two tables agree on a
// slot only when they hold the same *Impl.
type Impl struct {
	name string
	fn   any
}

// NewImpl creates an implementation reference. fn is an optional payload for
// dispatchers and is never inspected by this package.
func NewImpl(name string, fn any) *Impl {
	return &Impl{name: name, fn: fn}
}

// Name returns the diagnostic name of the implementation.
func (i *Impl) Name() string {
	if i == nil {
		return "<nil>"
	}
	return i.name
}

// Func returns the payload passed to NewImpl.
func (i *Impl) Func() any {
	return i.fn
}

func (i *Impl) String() string {
	return i.Name()
}

// Table is an immutable mapping from slot to implementation.
type Table struct {
	entries [numSlots]*Impl
	n       int
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{}
}

// Get returns the implementation stored for id.
func (t *Table) Get(id ID) (*Impl, bool) {
	if t == nil || !id.Valid() {
		return nil, false
	}
	impl := t.entries[id]
	return impl, impl != nil
}

// Has reports whether the table defines id.
func (t *Table) Has(id ID) bool {
	_, ok := t.Get(id)
	return ok
}

// Len returns the number of defined slots.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// All yields the defined slots in slot order.
func (t *Table) All() iter.Seq2[ID, *Impl] {
	return func(yield func(ID, *Impl) bool) {
		if t == nil {
			return
		}
		for i, impl := range t.entries {
			if impl == nil {
				continue
			}
			if !yield(ID(i), impl) {
				return
			}
		}
	}
}

// IDs returns the defined slots in slot order.
func (t *Table) IDs() []ID {
	ids := make([]ID, 0, t.Len())
	for id := range t.All() {
		ids = append(ids, id)
	}
	return ids
}

// Equal reports structural equality: both tables define the same slots with
// identical implementation references.
func (t *Table) Equal(other *Table) bool {
	if t == other {
		return true
	}
	if t.Len() != other.Len() {
		return false
	}
	if t == nil || other == nil {
		return true
	}
	return t.entries == other.entries
}

// Copy returns a builder seeded with the entries of t. The table itself is
// never modified.
func (t *Table) Copy() *Builder {
	b := NewBuilder()
	if t != nil {
		b.entries = t.entries
	}
	return b
}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for id, impl := range t.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(id.String())
		sb.WriteString(": ")
		sb.WriteString(impl.Name())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Merge returns the union of a and b. Contributors are expected not to
// collide; when they do, the entry from b wins, so the result depends on
// argument order.
func Merge(a, b *Table) *Table {
	return a.Copy().Merge(b).Build()
}

// MergeAll folds Merge over tables from left to right.
func MergeAll(tables ...*Table) *Table {
	b := NewBuilder()
	for _, t := range tables {
		b.Merge(t)
	}
	return b.Build()
}
