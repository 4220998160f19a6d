// This file contains the logic for translating HCL `type` blocks into the
// format-agnostic configuration model.

package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/ctxlog"
)

// validKey reports whether key can be referenced as a bare identifier from
// `base` and `metatype`. HCL identifiers may contain dashes, but a dashed
// reference would parse as subtraction.
func validKey(key string) bool {
	return hclsyntax.ValidIdentifier(key) && !strings.Contains(key, "-")
}

// translateType converts a `type` block into a config.TypeDefinition.
func (l *Loader) translateType(ctx context.Context, b *typeBlock, file string) (*config.TypeDefinition, error) {
	if !validKey(b.Key) {
		return nil, fmt.Errorf("in %s: type key %q is not a valid identifier", file, b.Key)
	}
	if b.Name == "" {
		return nil, fmt.Errorf("in %s, type '%s': name must not be empty", file, b.Key)
	}

	flags, err := decodeFlags(ctx, b.Flags, l.evalCtx)
	if err != nil {
		return nil, fmt.Errorf("in %s, type '%s', attribute 'flags': %w", file, b.Key, err)
	}
	methodFlags, err := decodeMethodFlags(b.MethodFlags, l.evalCtx)
	if err != nil {
		return nil, fmt.Errorf("in %s, type '%s', attribute 'method_flags': %w", file, b.Key, err)
	}
	base, err := typeRef(b.Base)
	if err != nil {
		return nil, fmt.Errorf("in %s, type '%s', attribute 'base': %w", file, b.Key, err)
	}
	metatype, err := typeRef(b.Metatype)
	if err != nil {
		return nil, fmt.Errorf("in %s, type '%s', attribute 'metatype': %w", file, b.Key, err)
	}
	slotUnits, err := typeRefList(b.Slots)
	if err != nil {
		return nil, fmt.Errorf("in %s, type '%s', attribute 'slots': %w", file, b.Key, err)
	}
	if base == b.Key {
		return nil, fmt.Errorf("in %s, type '%s': a type cannot be its own base", file, b.Key)
	}

	def := &config.TypeDefinition{
		Key:         b.Key,
		Name:        b.Name,
		Module:      b.Module,
		PublishIn:   b.PublishIn,
		Unpublished: b.Unpublished,
		Flags:       flags,
		MethodFlags: methodFlags,
		Base:        base,
		Metatype:    metatype,
		Slots:       slotUnits,
		Weakrefable: b.Weakrefable,
		Source:      file,
	}
	ctxlog.FromContext(ctx).Debug("Translated type block.", "key", def.Key, "base", def.Base, "slots", def.Slots)
	return def, nil
}
