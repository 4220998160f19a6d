package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/typedesc"
	"github.com/vk/typeslots/internal/units"
)

func TestValidateContributors(t *testing.T) {
	t.Parallel()

	listSlots := slots.NewBuilder().Set(slots.Len, slots.NewImpl("list.len", nil)).Build()
	dictRepr := slots.NewBuilder().Set(slots.Repr, slots.NewImpl("dict.repr", nil)).Build()
	dictIter := slots.NewBuilder().Set(slots.Iter, slots.NewImpl("dict.iter", nil)).Build()

	testCases := []struct {
		name        string
		declare     func(r *Registry)
		units       []*units.Unit
		errContains []string
	}{
		{
			name: "single unit identical table",
			declare: func(r *Registry) {
				r.Declare("PList", "list", typedesc.WithModule("builtins"), typedesc.WithSlots(listSlots))
			},
			units: []*units.Unit{{Name: "ListBuiltins", Extends: []string{"PList"}, Slots: listSlots}},
		},
		{
			name: "single unit equal but distinct table",
			declare: func(r *Registry) {
				r.Declare("PList", "list", typedesc.WithModule("builtins"), typedesc.WithSlots(listSlots))
			},
			units: []*units.Unit{{Name: "ListBuiltins", Extends: []string{"PList"}, Slots: listSlots.Copy().Build()}},
			errContains: []string{
				"type 'PList': declared slots are not the table of its only unit 'ListBuiltins'",
			},
		},
		{
			name: "several units merging to declared table",
			declare: func(r *Registry) {
				r.Declare("PDict", "dict", typedesc.WithModule("builtins"), typedesc.WithSlots(slots.Merge(dictRepr, dictIter)))
			},
			units: []*units.Unit{
				{Name: "DictBuiltins", Extends: []string{"PDict"}, Slots: dictRepr},
				{Name: "DictIterBuiltins", Extends: []string{"PDict"}, Slots: dictIter},
			},
		},
		{
			name: "several units missing a slot",
			declare: func(r *Registry) {
				r.Declare("PDict", "dict", typedesc.WithModule("builtins"), typedesc.WithSlots(dictRepr))
			},
			units: []*units.Unit{
				{Name: "DictBuiltins", Extends: []string{"PDict"}, Slots: dictRepr},
				{Name: "DictIterBuiltins", Extends: []string{"PDict"}, Slots: dictIter},
			},
			errContains: []string{
				"type 'PDict': declared slots {__repr__: dict.repr} differ from merged units [DictBuiltins, DictIterBuiltins]",
			},
		},
		{
			name:    "unit extending unknown type",
			declare: func(r *Registry) {},
			units:   []*units.Unit{{Name: "GhostBuiltins", Extends: []string{"PGhost"}}},
			errContains: []string{
				"unit 'GhostBuiltins': extends unknown type 'PGhost'",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			f := newFixture(nil)
			tc.declare(f.reg)
			f.resolve(t)
			us := units.New()
			for _, u := range tc.units {
				us.Register(u)
			}

			// --- Act ---
			err := f.reg.ValidateContributors(context.Background(), us)

			// --- Assert ---
			if len(tc.errContains) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "registry validation failed:")
			for _, want := range tc.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
