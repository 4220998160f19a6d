package slots

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryGroupHasMembers(t *testing.T) {
	t.Parallel()

	seen := 0
	for g := Group(0); g < numGroups; g++ {
		members := g.Members()
		require.NotEmpty(t, members, "group %s has no members", g)
		for _, id := range members {
			assert.Equal(t, g, id.Group())
		}
		seen += len(members)
	}
	assert.Equal(t, Count, seen)
}

func TestByName(t *testing.T) {
	t.Parallel()

	id, ok := ByName("__len__")
	require.True(t, ok)
	assert.Equal(t, Len, id)

	_, ok = ByName("__nope__")
	assert.False(t, ok)
}

func TestMerge_UnionOfDisjointTables(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	repr := NewImpl("A.repr", nil)
	length := NewImpl("B.len", nil)
	a := NewBuilder().Set(Repr, repr).Build()
	b := NewBuilder().Set(Len, length).Build()

	// --- Act ---
	merged := Merge(a, b)

	// --- Assert ---
	assert.Equal(t, 2, merged.Len())
	got, _ := merged.Get(Repr)
	assert.Same(t, repr, got)
	got, _ = merged.Get(Len)
	assert.Same(t, length, got)
	assert.Equal(t, 1, a.Len(), "inputs must stay untouched")
}

func TestMerge_LastWriterWins(t *testing.T) {
	t.Parallel()

	first := NewImpl("first", nil)
	second := NewImpl("second", nil)
	a := NewBuilder().Set(Hash, first).Build()
	b := NewBuilder().Set(Hash, second).Build()

	got, _ := Merge(a, b).Get(Hash)
	assert.Same(t, second, got)
	got, _ = Merge(b, a).Get(Hash)
	assert.Same(t, first, got)
}

func TestMergeAll_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, MergeAll().Equal(Empty()))
}

func TestOverride_ReplacesWholeGroup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	parentEq := NewImpl("parent.eq", nil)
	parentLt := NewImpl("parent.lt", nil)
	parentLen := NewImpl("parent.len", nil)
	childEq := NewImpl("child.eq", nil)
	parent := NewBuilder().Set(Eq, parentEq).Set(Lt, parentLt).Set(Len, parentLen).Build()
	child := NewBuilder().Set(Eq, childEq).Build()

	// --- Act ---
	result := parent.Copy().Override(child).Build()

	// --- Assert ---
	assert.Equal(t, []ID{Eq, Len}, result.IDs())
	got, _ := result.Get(Eq)
	assert.Same(t, childEq, got)
	assert.False(t, result.Has(Lt), "stale sibling of an overridden group must be dropped")
	assert.Equal(t, 3, parent.Len(), "parent table must stay untouched")
}

func TestOverride_Idempotent(t *testing.T) {
	t.Parallel()

	parent := NewBuilder().
		Set(Repr, NewImpl("p.repr", nil)).
		Set(SetAttr, NewImpl("p.setattr", nil)).
		Set(DelAttr, NewImpl("p.delattr", nil)).
		Build()
	declared := NewBuilder().
		Set(SetAttr, NewImpl("c.setattr", nil)).
		Set(Iter, NewImpl("c.iter", nil)).
		Build()

	once := parent.Copy().Override(declared).Build()
	twice := parent.Copy().Override(declared).Override(declared).Build()

	assert.True(t, once.Equal(twice), "once=%s twice=%s", once, twice)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	impl := NewImpl("x", nil)
	a := NewBuilder().Set(Call, impl).Build()
	b := NewBuilder().Set(Call, impl).Build()
	c := NewBuilder().Set(Call, NewImpl("x", nil)).Build()

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "equal names but distinct references are not equal")
	assert.False(t, a.Equal(Empty()))
	assert.True(t, Empty().Equal(Empty()))
}

func TestBuilder_MisusePanics(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Build()

	assert.PanicsWithValue(t, "slots: builder used after Build", func() { b.Build() })
	assert.PanicsWithValue(t, "slots: builder used after Build", func() { b.Set(Repr, NewImpl("r", nil)) })
	assert.Panics(t, func() { NewBuilder().Set(Repr, nil) })
}

func TestString(t *testing.T) {
	t.Parallel()

	table := NewBuilder().
		Set(Len, NewImpl("list.len", nil)).
		Set(Repr, NewImpl("list.repr", nil)).
		Build()

	if diff := cmp.Diff("{__repr__: list.repr, __len__: list.len}", table.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}
