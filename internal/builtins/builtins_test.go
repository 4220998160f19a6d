package builtins

import (
	"context"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/registry"
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/typedesc"
)

// buildChecked builds the embedded catalogue with every debug check enabled.
func buildChecked(t *testing.T) *registry.Registry {
	t.Helper()
	ctx := context.Background()
	model, err := LoadEmbedded(ctx)
	require.NoError(t, err)
	reg, err := Build(ctx, model, Units(), BuildOptions{CheckInvariants: true})
	require.NoError(t, err)
	return reg
}

// implName is the name unit gives to the implementation of id.
func implName(unitName string, id slots.ID) string {
	return unitName + "." + id.String()
}

func slotImpl(t *testing.T, reg *registry.Registry, key string, id slots.ID) string {
	t.Helper()
	impl, ok := reg.Slots(reg.MustLookup(key)).Get(id)
	require.True(t, ok, "%s has no %s", key, id)
	return impl.Name()
}

func TestCatalogue_AgreesWithUnits(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := buildChecked(t)

	// --- Act ---
	err := reg.ValidateContributors(context.Background(), Units())

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, reg.Resolved())
	for _, d := range reg.All() {
		assert.True(t, d.Frozen(), "%s is not frozen", d.Key())
		assert.NotNil(t, d.Slots(), "%s has no computed slots", d.Key())
	}
}

func TestCatalogue_WellKnownTypes(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	root := reg.Get(reg.Root())
	class := reg.Get(reg.Class())
	assert.Equal(t, RootKey, root.Key())
	assert.Equal(t, ClassKey, class.Key())
	assert.Nil(t, reg.Base(reg.Root()))
	assert.Same(t, class, reg.Metatype(reg.Root()))
	assert.Same(t, class, reg.Metatype(reg.Class()), "type is its own metatype")
	assert.Same(t, root.DeclaredSlots(), root.Slots())
}

func TestCatalogue_Hierarchy(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	testCases := []struct {
		key      string
		wantBase []string
		wantMeta string
	}{
		{key: "Boolean", wantBase: []string{"PInt", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "TabError", wantBase: []string{"IndentationError", "SyntaxError", "Exception", "PBaseException", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "SSLEOFError", wantBase: []string{"SSLError", "OSError", "Exception", "PBaseException", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "PFileIO", wantBase: []string{"PRawIOBase", "PIOBase", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "POrderedDictKeys", wantBase: []string{"PDictKeysView", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "PStructTime", wantBase: []string{"PTuple", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "PyCStructType", wantBase: []string{"PythonClass", "PythonObject"}, wantMeta: "PythonClass"},
		{key: "PyCData", wantBase: []string{"PythonObject"}, wantMeta: "PythonClass"},
		{key: "Structure", wantBase: []string{"PyCData", "PythonObject"}, wantMeta: "PyCStructType"},
		{key: "CField", wantBase: []string{"PythonObject"}, wantMeta: "PythonClass"},
		{key: "Union", wantBase: []string{"PyCData", "PythonObject"}, wantMeta: "UnionType"},
		{key: "PyCArray", wantBase: []string{"PyCData", "PythonObject"}, wantMeta: "PyCArrayType"},
		{key: "ForeignBoolean", wantBase: []string{"ForeignNumber", "ForeignObject", "PythonObject"}, wantMeta: "PythonClass"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			id := reg.MustLookup(tc.key)
			var gotBase []string
			for _, d := range reg.Ancestors(id) {
				gotBase = append(gotBase, d.Key())
			}
			if diff := cmp.Diff(tc.wantBase, gotBase); diff != "" {
				t.Errorf("ancestors mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantMeta, reg.Metatype(id).Key())
		})
	}
}

func TestCatalogue_InheritedSlots(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	testCases := []struct {
		name string
		key  string
		slot slots.ID
		want string
	}{
		{name: "bool overrides the bitwise group", key: "Boolean", slot: slots.And, want: implName("BoolBuiltins", slots.And)},
		{name: "bool overrides the reflected member too", key: "Boolean", slot: slots.RXor, want: implName("BoolBuiltins", slots.RXor)},
		{name: "bool inherits arithmetic from int", key: "Boolean", slot: slots.Add, want: implName("IntBuiltins", slots.Add)},
		{name: "type inherits comparisons from object", key: "PythonClass", slot: slots.Lt, want: implName("ObjectBuiltins", slots.Lt)},
		{name: "merged units both contribute", key: "PDict", slot: slots.Repr, want: implName("DictReprBuiltin", slots.Repr)},
		{name: "defaultdict overrides dict union", key: "PDefaultDict", slot: slots.ROr, want: implName("DefaultDictBuiltins", slots.ROr)},
		{name: "defaultdict inherits mapping access", key: "PDefaultDict", slot: slots.GetItem, want: implName("DictBuiltins", slots.GetItem)},
		{name: "frozenset inherits init from object", key: "PFrozenSet", slot: slots.Init, want: implName("ObjectBuiltins", slots.Init)},
		{name: "set init comes from its own unit", key: "PSet", slot: slots.Init, want: implName("SetBuiltins", slots.Init)},
		{name: "exceptions reach BaseException", key: "ZeroDivisionError", slot: slots.Str, want: implName("BaseExceptionBuiltins", slots.Str)},
		{name: "key error string", key: "KeyError", slot: slots.Str, want: implName("KeyErrorBuiltins", slots.Str)},
		{name: "struct sequences reuse tuple items", key: "PVersionInfo", slot: slots.GetItem, want: implName("TupleBuiltins", slots.GetItem)},
		{name: "ctypes metatypes keep type call", key: "PyCArrayType", slot: slots.Call, want: implName("TypeBuiltins", slots.Call)},
		{name: "foreign boolean keeps number arithmetic", key: "ForeignBoolean", slot: slots.Mul, want: implName("ForeignNumberBuiltins", slots.Mul)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slotImpl(t, reg, tc.key, tc.slot))
		})
	}
}

func TestCatalogue_GroupOverrideDropsSiblings(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	// str declares __add__ without __radd__, so object's empty pair is
	// replaced as a whole and nothing is inherited for __radd__.
	str := reg.Slots(reg.MustLookup("PString"))
	assert.True(t, str.Has(slots.Add))
	assert.False(t, str.Has(slots.RAdd))
}

func TestCatalogue_NamesAndModules(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	testCases := []struct {
		key          string
		wantDeclared string
		wantModule   string
		wantPrint    string
	}{
		{key: "PInt", wantDeclared: "builtins", wantModule: "builtins", wantPrint: "int"},
		{key: "PDefaultDict", wantDeclared: "_collections", wantModule: "collections", wantPrint: "collections.defaultdict"},
		{key: "PSimpleNamespace", wantDeclared: "", wantModule: "types", wantPrint: "types.SimpleNamespace"},
		{key: "PIterator", wantDeclared: "", wantModule: "", wantPrint: "iterator"},
		{key: "PScandirIterator", wantDeclared: "posix", wantModule: "", wantPrint: "posix.ScandirIterator"},
		{key: "AST", wantDeclared: "_ast", wantModule: "ast", wantPrint: "ast.AST"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			d := reg.Get(reg.MustLookup(tc.key))
			assert.Equal(t, tc.wantDeclared, d.DeclaringModule())
			assert.Equal(t, tc.wantModule, d.ModuleName())
			assert.Equal(t, tc.wantPrint, d.PrintName())
		})
	}

	d, ok := reg.ByName("builtins", "bool")
	require.True(t, ok)
	assert.Equal(t, "Boolean", d.Key())
	d, ok = reg.ByName("", "dict_keys")
	require.True(t, ok)
	assert.Equal(t, "PDictKeysView", d.Key())
	_, ok = reg.ByName("builtins", "iterator")
	assert.False(t, ok, "private types have no module name")
}

func TestCatalogue_FlagsAndMethodFlags(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	assert.Equal(t, typedesc.PublicBaseWithoutDict, reg.Get(reg.MustLookup("PList")).Flags())
	assert.Equal(t, typedesc.Exception, reg.Get(reg.MustLookup("ValueError")).Flags())
	assert.Equal(t, typedesc.PrivateBaseWithoutDict, reg.Get(reg.MustLookup("PTraceback")).Flags())
	assert.Equal(t, typedesc.ListMethods, reg.Get(reg.MustLookup("PList")).MethodFlags())
	assert.Equal(t, typedesc.TupleMethods, reg.Get(reg.MustLookup("PStatResult")).MethodFlags())
	assert.Equal(t, typedesc.DefaultMethods, reg.Get(reg.MustLookup("PRawIOBase")).MethodFlags(),
		"method flags are not inherited")
}

func TestCatalogue_WeaklistOffsets(t *testing.T) {
	t.Parallel()

	reg := buildChecked(t)

	testCases := []struct {
		key  string
		want int
	}{
		{key: "PythonClass", want: objectHeaderSize + pointerSize},
		{key: "PFunction", want: objectHeaderSize + pointerSize},
		{key: "PSet", want: objectHeaderSize},
		{key: "PList", want: typedesc.WeaklistNotApplicable},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, reg.Get(reg.MustLookup(tc.key)).WeaklistOffset(), tc.key)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	object := &config.TypeDefinition{Key: RootKey, Name: "object", Module: "builtins", Slots: []string{"ObjectBuiltins"}}
	class := &config.TypeDefinition{Key: ClassKey, Name: "type", Module: "builtins", Slots: []string{"TypeBuiltins"}}

	testCases := []struct {
		name    string
		types   []*config.TypeDefinition
		wantErr string
	}{
		{
			name:    "unknown unit",
			types:   []*config.TypeDefinition{object, class, {Key: "PList", Name: "list", Slots: []string{"NoSuchBuiltins"}, Source: "m.hcl"}},
			wantErr: "type 'PList' (m.hcl): unknown slots unit 'NoSuchBuiltins'",
		},
		{
			name:    "unknown base",
			types:   []*config.TypeDefinition{object, class, {Key: "Boolean", Name: "bool", Base: "PInt", Source: "m.hcl"}},
			wantErr: "type 'Boolean' (m.hcl): unknown base type 'PInt'",
		},
		{
			name:    "unknown metatype",
			types:   []*config.TypeDefinition{object, class, {Key: "Structure", Name: "Structure", Metatype: "PyCStructType", Source: "m.hcl"}},
			wantErr: "type 'Structure' (m.hcl): unknown metatype 'PyCStructType'",
		},
		{
			name:    "duplicate key",
			types:   []*config.TypeDefinition{object, class, object},
			wantErr: "type 'PythonObject' is declared twice",
		},
		{
			name:    "missing root",
			types:   []*config.TypeDefinition{class},
			wantErr: "catalogue does not declare the root type 'PythonObject'",
		},
		{
			name:    "missing class",
			types:   []*config.TypeDefinition{object},
			wantErr: "catalogue does not declare the class type 'PythonClass'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Build(context.Background(), &config.Model{Types: tc.types}, Units(), BuildOptions{})

			require.Error(t, err)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestBuild_CustomLayout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{Types: []*config.TypeDefinition{
		{Key: RootKey, Name: "object", Module: "builtins", Slots: []string{"ObjectBuiltins"}},
		{Key: ClassKey, Name: "type", Module: "builtins", Slots: []string{"TypeBuiltins"}, Weakrefable: true},
	}}
	layout := registry.LayoutFunc(func(d *typedesc.Descriptor) int { return 40 })

	// --- Act ---
	reg, err := Build(context.Background(), model, Units(), BuildOptions{Layout: layout})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 40, reg.Get(reg.MustLookup(RootKey)).WeaklistOffset())
	assert.Equal(t, 40, reg.Get(reg.MustLookup(ClassKey)).WeaklistOffset())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	reg := Default()

	require.NotNil(t, reg)
	assert.Same(t, reg, Default())
	assert.True(t, reg.Resolved())
	assert.Equal(t, buildChecked(t).Len(), reg.Len())
}

func TestDefault_CDataMetatype(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := Default()

	// --- Act ---
	data := reg.Metatype(reg.MustLookup("PyCData"))
	structure := reg.Metatype(reg.MustLookup("Structure"))

	// --- Assert ---
	assert.Equal(t, ClassKey, data.Key(), "_CData keeps the default metatype")
	assert.Equal(t, "PyCStructType", structure.Key())
}

func TestManifests(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(Manifests(), ManifestDir+"/*.hcl")

	require.NoError(t, err)
	assert.NotEmpty(t, files)
	assert.Contains(t, files, ManifestDir+"/00_core.hcl")
}
