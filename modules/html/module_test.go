package html

import (
	"context"
	"testing"

	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode records attribute writes.
type fakeNode struct {
	attrs  map[string]string
	writes int
}

func newFakeNode(attrs map[string]string) *fakeNode {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &fakeNode{attrs: attrs}
}

func (n *fakeNode) GetAttribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *fakeNode) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

func (n *fakeNode) SetAttribute(name, value string) {
	n.writes++
	n.attrs[name] = value
}

func (n *fakeNode) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

var _ domproperty.Node = (*fakeNode)(nil)

func TestIsDataOrAriaAttribute(t *testing.T) {
	for _, name := range []string{"data-foo", "aria-label", "data-", "data-x.y"} {
		assert.True(t, IsDataOrAriaAttribute(name), name)
	}
	for _, name := range []string{"foo", "data", "xdata-foo", "data-a b", "Data-foo", "data-\xff", "aria-a\xfeb"} {
		assert.False(t, IsDataOrAriaAttribute(name), name)
	}
}

func TestSetValue(t *testing.T) {
	n := newFakeNode(nil)
	SetValue(n, 42)
	assert.Equal(t, "42", n.attrs["value"])

	SetValue(n, nil)
	assert.False(t, n.HasAttribute("value"))

	num := newFakeNode(map[string]string{"type": "number", "value": "3"})
	SetValue(num, 3)
	assert.Equal(t, 0, num.writes, "unchanged number input is not rewritten")
	SetValue(num, "4")
	assert.Equal(t, "4", num.attrs["value"])
	assert.Equal(t, 1, num.writes)

	fresh := newFakeNode(map[string]string{"type": "number"})
	SetValue(fresh, 1)
	assert.Equal(t, "1", fresh.attrs["value"])
}

func TestModule_Build(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	r := registry.New(nil)
	require.NoError(t, r.RegisterModules(ctx, &Module{}))

	dom, err := r.Build(ctx)
	require.NoError(t, err)

	className, ok := dom.Property("className")
	require.True(t, ok)
	assert.Equal(t, "class", className.AttributeName)
	assert.Equal(t, "className", className.PropertyName)

	checked, ok := dom.Property("checked")
	require.True(t, ok)
	assert.True(t, checked.MustUseProperty)
	assert.Equal(t, domproperty.KindBoolean, checked.Kind())

	rows, ok := dom.Property("rows")
	require.True(t, ok)
	assert.Equal(t, domproperty.KindPositiveNumeric, rows.Kind())
	assert.True(t, rows.HasNumericValue)

	download, ok := dom.Property("download")
	require.True(t, ok)
	assert.Equal(t, domproperty.KindOverloadedBoolean, download.Kind())

	value, ok := dom.Property("value")
	require.True(t, ok)
	require.NotNil(t, value.MutationMethod)
	n := newFakeNode(nil)
	value.MutationMethod(n, "hello")
	assert.Equal(t, "hello", n.attrs["value"])

	assert.True(t, dom.IsCustomAttribute("data-reactid"))
	assert.True(t, dom.IsCustomAttribute("aria-hidden"))
	assert.False(t, dom.IsCustomAttribute("onclick"))
}
