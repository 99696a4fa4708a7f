package domproperty

import (
	"regexp"
	"unicode/utf8"
)

const (
	// IDAttributeName marks the identity of rendered elements.
	IDAttributeName = "data-reactid"
	// RootAttributeName marks the root element of a rendered tree.
	RootAttributeName = "data-reactroot"
)

// Namespace URIs used by namespaced SVG attributes.
const (
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
)

// AttributeNameStartChar is the XML NameStartChar class body, in RE2 syntax.
const AttributeNameStartChar = `:A-Z_a-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{02FF}` +
	`\x{0370}-\x{037D}\x{037F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}` +
	`\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}`

// AttributeNameChar is the XML NameChar class body, in RE2 syntax.
const AttributeNameChar = AttributeNameStartChar + `\-.0-9\x{00B7}\x{0300}-\x{036F}\x{203F}-\x{2040}`

var validAttributeName = regexp.MustCompile(`^[` + AttributeNameStartChar + `][` + AttributeNameChar + `]*$`)

// IsValidAttributeName reports whether name is a syntactically valid XML
// attribute name. Invalid UTF-8 is never valid.
func IsValidAttributeName(name string) bool {
	return utf8.ValidString(name) && validAttributeName.MatchString(name)
}
