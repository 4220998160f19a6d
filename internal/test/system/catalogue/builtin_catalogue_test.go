package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typeslots/internal/app"
	"github.com/vk/typeslots/internal/testutil"
)

// Test for: the embedded catalogue resolves with every check enabled
func TestCatalogue_EmbeddedResolvesWithAllChecks(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunAppTest(t, nil, app.Config{Verify: true, CheckInvariants: true})

	// --- Assert ---
	require.NoError(t, result.Err)
	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	assert.Equal(t, result.App.Registry().Len()+1, len(lines), "one header line plus one line per type")
	testutil.AssertLogged(t, result, "Registry validation passed.")
}

// Test for: selectors accept keys, qualified names and bare names
func TestCatalogue_SelectorForms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		selector string
		wantHead string
	}{
		{selector: "PDeque", wantHead: "PDeque (_collections.deque)"},
		{selector: "_collections.deque", wantHead: "PDeque (_collections.deque)"},
		{selector: "builtins.int", wantHead: "PInt (int)"},
		{selector: "int", wantHead: "PInt (int)"},
		{selector: "dict_keys", wantHead: "PDictKeysView (dict_keys)"},
		{selector: "os.stat_result", wantHead: "PStatResult (os.stat_result)"},
		{selector: "_ctypes.Structure", wantHead: "Structure (_ctypes.Structure)"},
	}

	for _, tc := range testCases {
		t.Run(tc.selector, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunAppTest(t, nil, app.Config{Selectors: []string{tc.selector}, LogLevel: "warn"})

			require.NoError(t, result.Err)
			assert.True(t, strings.HasPrefix(result.Output, tc.wantHead), "output starts with %q:\n%s", tc.wantHead, result.Output)
		})
	}
}
