package config

import "github.com/specialistvlad/domprops/internal/domproperty"

// Model is the unified representation of every loaded bundle, in load order.
type Model struct {
	Bundles []*Bundle
}

// Bundle is one configuration bundle, usually one attribute family.
type Bundle struct {
	Name string
	// Family names the attribute family ("html", "svg", ...). Used for
	// diagnostics only.
	Family string
	// Source is the file the bundle was read from.
	Source string
	// CustomAttribute names a registered predicate, or is empty.
	CustomAttribute string
	// Properties are kept in declaration order.
	Properties []*Property
}

// Property describes one property of a bundle. Nil override fields mean the
// registry default applies.
type Property struct {
	Name           string
	Flags          domproperty.Flags
	AttributeName  *string
	Namespace      *string
	PropertyName   *string
	MutationMethod *string
}

// PropertyNames returns the names of the bundle's properties in declaration
// order.
func (b *Bundle) PropertyNames() []string {
	names := make([]string, 0, len(b.Properties))
	for _, p := range b.Properties {
		names = append(names, p.Name)
	}
	return names
}
