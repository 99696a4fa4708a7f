// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, evaluating
// property flag expressions and translating the HCL schema into the
// format-agnostic bundle model.
//
// A bundle file looks like:
//
//	bundle "svg" {
//	  family           = "svg"
//	  custom_attribute = "svg.none"
//
//	  property "xlinkHref" {
//	    attribute = "xlink:href"
//	    namespace = NS_XLINK
//	  }
//	  property "tabIndex" {
//	    flags = bitor(MUST_USE_PROPERTY, HAS_NUMERIC_VALUE)
//	  }
//	}
package hcl
