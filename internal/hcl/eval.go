// This file contains the evaluation context manifests are evaluated in and
// the helpers that turn evaluated cty values into typedesc values.

package hcl

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/typedesc"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// flagsType is the object type a `flags` expression must convert to.
var flagsType = mustImpliedType(typedesc.Flags{})

func mustImpliedType(v any) cty.Type {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		panic(fmt.Sprintf("hcl: cannot imply cty type of %T: %v", v, err))
	}
	return ty
}

// newEvalContext exposes the flag presets as `flags.<name>` and the method
// flag presets and bits as `mflags.<name>`.
func newEvalContext() *hcl.EvalContext {
	flagAttrs := make(map[string]cty.Value)
	for _, name := range typedesc.PresetNames() {
		preset, _ := typedesc.PresetByName(name)
		val, err := gocty.ToCtyValue(preset, flagsType)
		if err != nil {
			panic(fmt.Sprintf("hcl: cannot encode flag preset %s: %v", name, err))
		}
		flagAttrs[name] = val
	}

	methodAttrs := make(map[string]cty.Value)
	for name, bits := range typedesc.MethodPresets() {
		methodAttrs[name] = cty.NumberUIntVal(uint64(bits))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"flags":  cty.ObjectVal(flagAttrs),
			"mflags": cty.ObjectVal(methodAttrs),
		},
	}
}

// isAbsent reports whether an optional attribute was left out. gohcl fills
// missing expression fields with a static null.
func isAbsent(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}

// decodeFlags evaluates a `flags` expression, either a preset reference or
// an inline object.
func decodeFlags(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (*typedesc.Flags, error) {
	if isAbsent(expr) {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	converted, err := convert.Convert(val, flagsType)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to flags: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		ctxlog.FromContext(ctx).Debug("Implicitly converted flags value.", "from", val.Type().FriendlyName())
	}
	var flags typedesc.Flags
	if err := gocty.FromCtyValue(converted, &flags); err != nil {
		return nil, err
	}
	return &flags, nil
}

// decodeMethodFlags evaluates a `method_flags` expression. A list of values
// is ORed together.
func decodeMethodFlags(expr hcl.Expression, evalCtx *hcl.EvalContext) (typedesc.MethodFlags, error) {
	if isAbsent(expr) {
		return typedesc.DefaultMethods, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		return methodBits(val)
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		list, err := convert.Convert(val, cty.List(cty.Number))
		if err != nil {
			return 0, fmt.Errorf("method flags must be numbers: %w", err)
		}
		var out typedesc.MethodFlags
		for it := list.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			bits, err := methodBits(elem)
			if err != nil {
				return 0, err
			}
			out |= bits
		}
		return out, nil
	default:
		return 0, fmt.Errorf("method flags must be a number or a list of numbers, got %s", ty.FriendlyName())
	}
}

func methodBits(val cty.Value) (typedesc.MethodFlags, error) {
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("method flags must be known, non-null numbers")
	}
	if bf := val.AsBigFloat(); bf.Sign() < 0 || !bf.IsInt() || bf.Cmp(new(big.Float).SetUint64(^uint64(0))) > 0 {
		return 0, fmt.Errorf("method flags must be unsigned integers, got %s", bf.Text('g', -1))
	}
	var bits uint64
	if err := gocty.FromCtyValue(val, &bits); err != nil {
		return 0, err
	}
	return typedesc.MethodFlags(bits), nil
}

// typeRef reads a bare identifier naming another type.
func typeRef(expr hcl.Expression) (string, error) {
	if isAbsent(expr) {
		return "", nil
	}
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", diags
	}
	if len(traversal) != 1 {
		return "", fmt.Errorf("type references must be a bare identifier, got %d traversal steps", len(traversal))
	}
	return traversal.RootName(), nil
}

// typeRefList reads a list of bare identifiers.
func typeRefList(expr hcl.Expression) ([]string, error) {
	if isAbsent(expr) {
		return nil, nil
	}
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make([]string, 0, len(exprs))
	for _, elem := range exprs {
		name, err := typeRef(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}
