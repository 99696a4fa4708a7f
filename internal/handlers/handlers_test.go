package handlers

import (
	"strings"
	"testing"

	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	h := New()
	h.RegisterPredicate("data", func(name string) bool { return strings.HasPrefix(name, "data-") })
	h.RegisterMutationMethod("noop", func(domproperty.Node, any) {})

	pred, ok := h.Predicate("data")
	require.True(t, ok)
	assert.True(t, pred("data-x"))

	_, ok = h.Predicate("missing")
	assert.False(t, ok)

	mm, ok := h.MutationMethod("noop")
	require.True(t, ok)
	assert.NotNil(t, mm)

	assert.Equal(t, []string{"data"}, h.PredicateNames())
	assert.Equal(t, []string{"noop"}, h.MutationMethodNames())
}

func TestRegister_PanicsOnDuplicateOrNil(t *testing.T) {
	h := New()
	h.RegisterPredicate("p", func(string) bool { return false })
	assert.PanicsWithValue(t, "custom attribute predicate with name 'p' already registered", func() {
		h.RegisterPredicate("p", func(string) bool { return true })
	})
	assert.Panics(t, func() { h.RegisterPredicate("nil", nil) })

	h.RegisterMutationMethod("m", func(domproperty.Node, any) {})
	assert.PanicsWithValue(t, "mutation method with name 'm' already registered", func() {
		h.RegisterMutationMethod("m", func(domproperty.Node, any) {})
	})
	assert.Panics(t, func() { h.RegisterMutationMethod("nil", nil) })
}
