package domproperty

// Config is one configuration bundle, typically describing a single
// attribute family. All fields are optional.
//
// The override maps are keyed by property name. Presence of a key decides
// whether the default is overridden, so an entry mapping to "" or nil still
// replaces the default.
type Config struct {
	// Properties maps each property name to its flag bitmask. Only names
	// listed here are registered; overrides for other names are ignored.
	Properties map[string]Flags
	// AttributeNamespaces maps property names to an XML namespace URI.
	AttributeNamespaces map[string]string
	// AttributeNames maps property names to the attribute to write when it
	// is not the lowercased property name.
	AttributeNames map[string]string
	// PropertyNames maps property names to the canonical DOM property.
	PropertyNames map[string]string
	// MutationMethods maps property names to custom setters.
	MutationMethods map[string]MutationMethod
	// IsCustomAttribute, if set, is appended to the registry's predicate
	// chain.
	IsCustomAttribute func(attributeName string) bool
}
