package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/fsutil"
)

const manifestExt = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: newEvalContext()}
}

// Load parses every manifest reachable from paths and translates the `type`
// blocks into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, fsys fs.FS, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(ctx, fsys, paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	declaredIn := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Types {
			if prev, exists := declaredIn[block.Key]; exists {
				return nil, fmt.Errorf("type '%s' declared in both %s and %s", block.Key, prev, file)
			}
			def, err := l.translateType(ctx, block, file)
			if err != nil {
				return nil, err
			}
			declaredIn[block.Key] = file
			model.Types = append(model.Types, def)
		}
		logger.Debug("Loaded manifest.", "file", file, "types", len(root.Types))
	}

	logger.Debug("HCL loading complete.", "types", len(model.Types))
	return model, nil
}

// findAllHCLFiles expands paths into a sorted, duplicate-free list of
// manifest files.
func (l *Loader) findAllHCLFiles(ctx context.Context, fsys fs.FS, paths []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, p := range paths {
		info, err := fs.Stat(fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Skipping missing manifest path.", "path", p)
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}

		if !info.IsDir() {
			if path.Ext(p) == manifestExt {
				add(p)
			}
			continue
		}
		found, err := fsutil.FindFilesByExtension(fsys, p, manifestExt)
		if err != nil {
			return nil, fmt.Errorf("error walking path %s: %w", p, err)
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(allFiles)
	return allFiles, nil
}
