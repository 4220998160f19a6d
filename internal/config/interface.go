package config

import (
	"context"
	"io/fs"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest reachable from paths inside fsys and
	// translates them into the format-agnostic model. Paths may name files
	// or directories; missing paths are skipped.
	Load(ctx context.Context, fsys fs.FS, paths ...string) (*Model, error)
}
