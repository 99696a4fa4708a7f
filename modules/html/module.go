// Package html provides the standard HTML attribute bundle together with the
// handlers it refers to.
package html

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/hcl"
	"github.com/specialistvlad/domprops/internal/registry"
)

//go:embed html.hcl
var bundleSource []byte

// Handler names referenced from html.hcl.
const (
	PredicateDataAria = "html.data_aria"
	MutationValue     = "html.value"
)

var dataAriaAttribute = regexp.MustCompile(`^(data|aria)-[` + domproperty.AttributeNameChar + `]*$`)

// Module implements the registry.Module interface for this package.
type Module struct{}

// IsDataOrAriaAttribute reports whether name is a data-* or aria-* attribute.
func IsDataOrAriaAttribute(name string) bool {
	return utf8.ValidString(name) && dataAriaAttribute.MatchString(name)
}

// SetValue writes the value attribute. A nil value removes it. Number inputs
// that already carry a value are only rewritten when the value changes, so a
// partially typed number is not clobbered.
func SetValue(node domproperty.Node, value any) {
	if value == nil {
		node.RemoveAttribute("value")
		return
	}
	s := fmt.Sprint(value)

	typ, _ := node.GetAttribute("type")
	if typ != "number" || !node.HasAttribute("value") {
		node.SetAttribute("value", s)
		return
	}
	if cur, _ := node.GetAttribute("value"); cur != s {
		node.SetAttribute("value", s)
	}
}

// Register adds the HTML handlers and bundle.
func (m *Module) Register(ctx context.Context, r *registry.Registry) error {
	r.Handlers().RegisterPredicate(PredicateDataAria, IsDataOrAriaAttribute)
	r.Handlers().RegisterMutationMethod(MutationValue, SetValue)
	return r.LoadSource(ctx, hcl.NewLoader(), "html.hcl", bundleSource)
}
