package domproperty

// Node is the attribute surface of a host DOM element that a MutationMethod
// operates on.
type Node interface {
	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// MutationMethod applies value to node in place of the default attribute
// assignment. A nil value means the property is being removed.
type MutationMethod func(node Node, value any)

// PropertyInfo is the resolved attribute metadata for one property name.
type PropertyInfo struct {
	// AttributeName is the HTML or SVG attribute written for the property.
	AttributeName string
	// AttributeNamespace is the XML namespace URI, or "" when absent.
	AttributeNamespace string
	// PropertyName is the canonical DOM object property. It may differ from
	// the key the property was registered under.
	PropertyName string
	// MutationMethod, when non-nil, replaces default attribute assignment.
	MutationMethod MutationMethod

	MustUseProperty           bool
	HasBooleanValue           bool
	HasNumericValue           bool
	HasPositiveNumericValue   bool
	HasOverloadedBooleanValue bool
}

// Kind reports the value semantics as a single enumeration.
func (p PropertyInfo) Kind() ValueKind {
	switch {
	case p.HasBooleanValue:
		return KindBoolean
	case p.HasPositiveNumericValue:
		return KindPositiveNumeric
	case p.HasNumericValue:
		return KindNumeric
	case p.HasOverloadedBooleanValue:
		return KindOverloadedBoolean
	default:
		return KindNone
	}
}

// HasNamespace reports whether the attribute lives in an XML namespace.
func (p PropertyInfo) HasNamespace() bool { return p.AttributeNamespace != "" }

// decodeFlags fills the boolean fields of a descriptor from f.
func decodeFlags(f Flags) PropertyInfo {
	return PropertyInfo{
		MustUseProperty:           f.Has(MustUseProperty),
		HasBooleanValue:           f.Has(HasBooleanValue),
		HasNumericValue:           f.Has(HasNumericValue),
		HasPositiveNumericValue:   f.Has(HasPositiveNumericValue),
		HasOverloadedBooleanValue: f.Has(HasOverloadedBooleanValue),
	}
}

// valueKinds counts how many mutually exclusive value kinds are set.
func (p PropertyInfo) valueKinds() int {
	n := 0
	for _, b := range []bool{p.HasBooleanValue, p.HasNumericValue, p.HasOverloadedBooleanValue} {
		if b {
			n++
		}
	}
	return n
}
