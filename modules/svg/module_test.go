package svg

import (
	"context"
	"testing"

	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/registry"
	"github.com/specialistvlad/domprops/modules/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_NamespacedAttributes(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	r := registry.New(nil)
	require.NoError(t, r.RegisterModules(ctx, &Module{}))

	dom, err := r.Build(ctx)
	require.NoError(t, err)

	href, ok := dom.Property("xlinkHref")
	require.True(t, ok)
	assert.Equal(t, "xlink:href", href.AttributeName)
	assert.Equal(t, domproperty.NamespaceXLink, href.AttributeNamespace)

	lang, ok := dom.Property("xmlLang")
	require.True(t, ok)
	assert.Equal(t, domproperty.NamespaceXML, lang.AttributeNamespace)

	viewBox, ok := dom.Property("viewBox")
	require.True(t, ok)
	assert.Equal(t, "viewBox", viewBox.AttributeName, "case is preserved by the override")

	x1, ok := dom.Property("x1")
	require.True(t, ok)
	assert.False(t, x1.HasNamespace())

	assert.False(t, dom.IsCustomAttribute("data-foo"), "svg registers no predicate")
}

func TestModule_DisjointFromHTML(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	r := registry.New(nil)
	require.NoError(t, r.RegisterModules(ctx, &html.Module{}, &Module{}))

	dom, err := r.Build(ctx)
	require.NoError(t, err, "html and svg bundles must not share property names")

	stroke, ok := dom.Property("strokeWidth")
	require.True(t, ok)
	assert.Equal(t, "stroke-width", stroke.AttributeName)
	assert.True(t, dom.IsCustomAttribute("data-foo"))
}
