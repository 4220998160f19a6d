package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MinimalCatalogue declares the two types every catalogue needs, wired to
// their real units.
const MinimalCatalogue = `
type "PythonObject" {
  name   = "object"
  module = "builtins"
  slots  = [ObjectBuiltins]
}

type "PythonClass" {
  name        = "type"
  module      = "builtins"
  flags       = flags.public_base_wdict
  slots       = [TypeBuiltins]
  weakrefable = true
}
`

// WriteManifests writes files, keyed by relative path, into a fresh
// temporary directory and returns it.
func WriteManifests(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}
