package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// BitOrFunc combines flag values with a bitwise OR.
var BitOrFunc = function.New(&function.Spec{
	Description: "Combines property flags with a bitwise OR.",
	VarParam: &function.Parameter{
		Name: "flags",
		Type: cty.Number,
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var out uint32
		for i, arg := range args {
			if !arg.AsBigFloat().IsInt() {
				return cty.UnknownVal(cty.Number), function.NewArgErrorf(i, "invalid flags value: must be a whole number")
			}
			var v uint32
			if err := gocty.FromCtyValue(arg, &v); err != nil {
				return cty.UnknownVal(cty.Number), function.NewArgError(i, err)
			}
			out |= v
		}
		return cty.NumberUIntVal(uint64(out)), nil
	},
})

// newEvalContext exposes the flag constants, namespace URIs and helper
// functions to bundle files.
func newEvalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{
		"NS_XLINK": cty.StringVal(domproperty.NamespaceXLink),
		"NS_XML":   cty.StringVal(domproperty.NamespaceXML),
	}
	for name, flag := range domproperty.FlagNames() {
		vars[name] = cty.NumberUIntVal(uint64(flag))
	}
	return &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			"bitor": BitOrFunc,
		},
	}
}
