// Package handlers stores the named Go functions that bundle files refer to:
// custom mutation methods and custom attribute predicates.
package handlers

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/domprops/internal/domproperty"
)

// Predicate reports whether an attribute name is a custom attribute.
type Predicate func(attributeName string) bool

// Handlers holds all the registered handlers.
type Handlers struct {
	mutationMethods map[string]domproperty.MutationMethod
	predicates      map[string]Predicate
}

// New creates an empty handler store.
func New() *Handlers {
	return &Handlers{
		mutationMethods: make(map[string]domproperty.MutationMethod),
		predicates:      make(map[string]Predicate),
	}
}

// RegisterMutationMethod registers a mutation method under name. Registering a
// name twice, or a nil function, is a programmer error and panics.
func (h *Handlers) RegisterMutationMethod(name string, fn domproperty.MutationMethod) {
	if fn == nil {
		panic(fmt.Sprintf("mutation method '%s' is nil", name))
	}
	if _, exists := h.mutationMethods[name]; exists {
		panic(fmt.Sprintf("mutation method with name '%s' already registered", name))
	}
	slog.Debug("Registering mutation method.", "name", name)
	h.mutationMethods[name] = fn
}

// RegisterPredicate registers a custom attribute predicate under name.
// Registering a name twice, or a nil function, panics.
func (h *Handlers) RegisterPredicate(name string, fn Predicate) {
	if fn == nil {
		panic(fmt.Sprintf("custom attribute predicate '%s' is nil", name))
	}
	if _, exists := h.predicates[name]; exists {
		panic(fmt.Sprintf("custom attribute predicate with name '%s' already registered", name))
	}
	slog.Debug("Registering custom attribute predicate.", "name", name)
	h.predicates[name] = fn
}

// MutationMethod looks up a mutation method by name.
func (h *Handlers) MutationMethod(name string) (domproperty.MutationMethod, bool) {
	fn, ok := h.mutationMethods[name]
	return fn, ok
}

// Predicate looks up a custom attribute predicate by name.
func (h *Handlers) Predicate(name string) (Predicate, bool) {
	fn, ok := h.predicates[name]
	return fn, ok
}

// MutationMethodNames returns the registered mutation method names, sorted.
func (h *Handlers) MutationMethodNames() []string {
	return slices.Sorted(maps.Keys(h.mutationMethods))
}

// PredicateNames returns the registered predicate names, sorted.
func (h *Handlers) PredicateNames() []string {
	return slices.Sorted(maps.Keys(h.predicates))
}
