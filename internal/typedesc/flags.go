package typedesc

import "sort"

// Flags are the categorical properties of a built-in type.
type Flags struct {
	IsPublic        bool `cty:"is_public"`
	IsBase          bool `cty:"is_base"`
	HasInstanceDict bool `cty:"has_dict"`
}

var (
	Exception                 = Flags{IsPublic: true, IsBase: true, HasInstanceDict: true}
	PrivateDerivedWithDict    = Flags{IsPublic: false, IsBase: false, HasInstanceDict: true}
	PrivateBaseWithDict       = Flags{IsPublic: false, IsBase: true, HasInstanceDict: true}
	PrivateBaseWithoutDict    = Flags{IsPublic: false, IsBase: true, HasInstanceDict: false}
	PublicBaseWithDict        = Flags{IsPublic: true, IsBase: true, HasInstanceDict: true}
	PublicBaseWithoutDict     = Flags{IsPublic: true, IsBase: true, HasInstanceDict: false}
	PublicDerivedWithoutDict  = Flags{IsPublic: true, IsBase: false, HasInstanceDict: false}
	PrivateDerivedWithoutDict = Flags{IsPublic: false, IsBase: false, HasInstanceDict: false}
)

var presets = map[string]Flags{
	"exception":              Exception,
	"private_derived_wdict":  PrivateDerivedWithDict,
	"private_base_wdict":     PrivateBaseWithDict,
	"private_base_wodict":    PrivateBaseWithoutDict,
	"public_base_wdict":      PublicBaseWithDict,
	"public_base_wodict":     PublicBaseWithoutDict,
	"public_derived_wodict":  PublicDerivedWithoutDict,
	"private_derived_wodict": PrivateDerivedWithoutDict,
}

// PresetByName returns the preset registered under name, using the
// snake_case names manifests refer to.
func PresetByName(name string) (Flags, bool) {
	f, ok := presets[name]
	return f, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
