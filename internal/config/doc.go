// Package config defines the format-agnostic model of DOM property bundles,
// along with the Loader interface implemented by concrete file formats.
//
// A config.Model is what the registry binder consumes. Handler references
// (mutation methods, custom attribute predicates) are kept as names here and
// resolved against Go code later, so a Model can be loaded and inspected
// without any handlers being registered.
package config
