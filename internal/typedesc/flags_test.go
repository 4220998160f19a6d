package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetByName(t *testing.T) {
	t.Parallel()

	f, ok := PresetByName("exception")
	require.True(t, ok)
	assert.Equal(t, Flags{IsPublic: true, IsBase: true, HasInstanceDict: true}, f)

	_, ok = PresetByName("public")
	assert.False(t, ok)
	assert.Len(t, PresetNames(), 8)
}

func TestMethodFlags_Names(t *testing.T) {
	t.Parallel()

	assert.Len(t, bitNames, 41, "every bit needs a name")
	assert.Equal(t, []string{"nb_bool"}, NoneMethods.Names())
	assert.True(t, IntMethods.Has(NbIndex|NbBool))
	assert.False(t, FloatMethods.Has(NbIndex))
	assert.Equal(t, "0", DefaultMethods.String())
	assert.Equal(t, "0x200(nb_bool)", NbBool.String())
}

func TestMethodPresets(t *testing.T) {
	t.Parallel()

	presets := MethodPresets()
	assert.Equal(t, ListMethods, presets["list"])
	assert.Equal(t, AmSend, presets["am_send"])
	presets["list"] = 0
	assert.Equal(t, ListMethods, MethodPresets()["list"], "callers get a copy")
}
