// This file contains the logic for translating HCL schema structs into the
// format-agnostic bundle model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateBundle converts the HCL-specific bundle schema into the agnostic model.
func (l *Loader) translateBundle(ctx context.Context, s *schema.Bundle, source string, evalCtx *hcl.EvalContext) (*config.Bundle, error) {
	logger := ctxlog.FromContext(ctx)

	b := &config.Bundle{
		Name:            s.Name,
		Family:          s.Family,
		Source:          source,
		CustomAttribute: s.CustomAttribute,
		Properties:      make([]*config.Property, 0, len(s.Properties)),
	}

	seen := make(map[string]struct{}, len(s.Properties))
	for _, p := range s.Properties {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("bundle %q: property %q is declared more than once", s.Name, p.Name)
		}
		seen[p.Name] = struct{}{}

		flags, err := evalFlags(p.Flags, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("bundle %q, property %q: %w", s.Name, p.Name, err)
		}

		b.Properties = append(b.Properties, &config.Property{
			Name:           p.Name,
			Flags:          flags,
			AttributeName:  p.Attribute,
			Namespace:      p.Namespace,
			PropertyName:   p.PropertyName,
			MutationMethod: p.MutationMethod,
		})
	}

	logger.Debug("Translated bundle.", "bundle", b.Name, "family", b.Family, "properties", len(b.Properties))
	return b, nil
}

// evalFlags evaluates a `flags` expression. Accepted forms are a number, a
// flag name string, or a list/tuple mixing both. A missing or null
// expression yields no flags.
func evalFlags(expr hcl.Expression, evalCtx *hcl.EvalContext) (domproperty.Flags, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, nil
	}
	if !val.IsWhollyKnown() {
		return 0, fmt.Errorf("flags must be known at load time")
	}

	ty := val.Type()
	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		var out domproperty.Flags
		it := val.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			f, err := flagValue(elem)
			if err != nil {
				return 0, err
			}
			out |= f
		}
		return out, nil
	}
	return flagValue(val)
}

// flagValue converts a single number or flag name into Flags.
func flagValue(val cty.Value) (domproperty.Flags, error) {
	if val.IsNull() {
		return 0, fmt.Errorf("flags must not contain null")
	}

	if val.Type() == cty.String {
		if f, err := domproperty.ParseFlag(val.AsString()); err == nil {
			return f, nil
		}
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot use %s as property flags: must be a number or a flag name", val.Type().FriendlyName())
	}
	if !num.AsBigFloat().IsInt() {
		return 0, fmt.Errorf("invalid flags value %s: must be a whole number", num.AsBigFloat().Text('g', -1))
	}
	var n uint32
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, fmt.Errorf("invalid flags value: %w", err)
	}
	return domproperty.Flags(n), nil
}
