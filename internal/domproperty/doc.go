// Package domproperty maps a virtual-DOM framework's property names to the
// HTML and SVG attributes, namespaces and mutation behaviors used when
// applying updates to real DOM nodes.
//
// A Registry is built at startup by injecting one or more configuration
// bundles (one per attribute family, e.g. HTML and SVG). Each bundle maps
// property names to a bitmask of Flags describing the value semantics of the
// property, plus optional overrides for the attribute name, namespace,
// canonical property name and custom mutation method. Injection rejects a
// property name that is already registered and a bitmask that combines more
// than one value kind.
//
// Typical usage:
//
//	reg := domproperty.New(domproperty.WithMode(domproperty.ModeProduction))
//	domproperty.MustInject(reg, htmlConfig)
//	domproperty.MustInject(reg, svgConfig)
//	if info, ok := reg.Property("className"); ok {
//	    _ = info.AttributeName // "class"
//	}
package domproperty
