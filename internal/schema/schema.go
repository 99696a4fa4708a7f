// Package schema holds the HCL decoding structs for bundle files.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a bundle file. A file may declare any
// number of bundles.
type File struct {
	Bundles []*Bundle `hcl:"bundle,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Bundle represents a `bundle` block.
type Bundle struct {
	Name            string      `hcl:"name,label"`
	Family          string      `hcl:"family,optional"`
	CustomAttribute string      `hcl:"custom_attribute,optional"`
	Properties      []*Property `hcl:"property,block"`
}

// Property represents a `property` block within a bundle. Flags is kept as an
// expression because it may be a number, a flag name or a list of either.
type Property struct {
	Name           string         `hcl:"name,label"`
	Flags          hcl.Expression `hcl:"flags,optional"`
	Attribute      *string        `hcl:"attribute,optional"`
	Namespace      *string        `hcl:"namespace,optional"`
	PropertyName   *string        `hcl:"property_name,optional"`
	MutationMethod *string        `hcl:"mutation_method,optional"`
}
