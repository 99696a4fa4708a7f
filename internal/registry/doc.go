// Package registry is the glue between loaded bundle definitions and the Go
// code that backs them.
//
// Bundles refer to mutation methods and custom attribute predicates by name.
// The Registry collects bundles from built-in modules and user files, checks
// that every referenced name is registered in the handler store, and then
// binds each bundle into a domproperty.Config and injects it into a fresh
// domproperty.Registry. Validation runs before any injection, so a broken
// bundle set never produces a half-built registry because of a missing
// handler.
package registry
