package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/hcl"
	"github.com/specialistvlad/domprops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	c.LogLevel = "debug"

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a, err := NewApp(out, logs, c, hcl.NewLoader())
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("DOMPROPS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func TestNewApp_BuiltinsOnly(t *testing.T) {
	a, _, logs := newTestApp(t, Config{})

	dom := a.Registry()
	assert.True(t, dom.Sealed())
	assert.Greater(t, dom.Len(), 100)
	_, ok := dom.Property("className")
	assert.True(t, ok)
	_, ok = dom.Property("xlinkHref")
	assert.True(t, ok)

	assert.Contains(t, logs.String(), "DOM property registry built.")
	assert.Len(t, a.Bundles().Bundles(), 2)
}

func TestNewApp_UserBundle(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"custom/widgets.hcl": `
bundle "widgets" {
  custom_attribute = "html.data_aria"

  property "onTap" {
    attribute = "on-tap"
  }
  property "ripples" {
    flags = HAS_POSITIVE_NUMERIC_VALUE
  }
}
`,
	})

	a, _, _ := newTestApp(t, Config{BundlePaths: []string{dir}})
	info, ok := a.Registry().Property("ripples")
	require.True(t, ok)
	assert.Equal(t, domproperty.KindPositiveNumeric, info.Kind())

	tap, ok := a.Registry().Property("onTap")
	require.True(t, ok)
	assert.Equal(t, "on-tap", tap.AttributeName)
}

func TestNewApp_UserBundleConflictsWithBuiltin(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"dup.hcl": `
bundle "mine" {
  property "className" {}
}
`,
	})
	c, err := NewConfig(Config{BundlePaths: []string{filepath.Join(dir, "dup.hcl")}})
	require.NoError(t, err)

	_, err = NewApp(&bytes.Buffer{}, &testutil.SafeBuffer{}, c, hcl.NewLoader())
	require.Error(t, err)
	assert.ErrorIs(t, err, domproperty.ErrDuplicateRegistration)
	assert.Contains(t, err.Error(), "DOM property 'className' which has already been injected")
}

func TestNewApp_ProductionMessages(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"bad.hcl": `
bundle "bad" {
  property "foo" {
    flags = bitor(HAS_NUMERIC_VALUE, HAS_OVERLOADED_BOOLEAN_VALUE)
  }
}
`,
	})
	c, err := NewConfig(Config{BundlePaths: []string{dir}, Mode: domproperty.ModeProduction})
	require.NoError(t, err)

	_, err = NewApp(&bytes.Buffer{}, &testutil.SafeBuffer{}, c, hcl.NewLoader())
	require.ErrorIs(t, err, domproperty.ErrConflictingValueKind)
	assert.Contains(t, err.Error(), "Minified exception occurred")
	assert.NotContains(t, err.Error(), "not a combination")
}

func TestNewApp_NoBuiltins(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"only.hcl": `
bundle "only" {
  property "tabIndex" {
    flags = HAS_NUMERIC_VALUE
  }
}
`,
	})
	a, _, _ := newTestApp(t, Config{BundlePaths: []string{dir}, NoBuiltins: true})
	assert.Equal(t, []string{"tabIndex"}, a.Registry().Properties())
	assert.False(t, a.Registry().IsCustomAttribute("data-foo"))
}

func TestRun_Lookup(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Lookup: "htmlFor"})
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "PROPERTY")
	assert.Contains(t, text, "htmlFor")
	assert.Contains(t, text, "for")
}

func TestRun_LookupJSON(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Lookup: "xlinkHref", Format: FormatJSON})
	require.NoError(t, a.Run(context.Background()))

	var row propertyRow
	require.NoError(t, json.Unmarshal(out.Bytes(), &row))
	assert.Equal(t, "xlink:href", row.AttributeName)
	assert.Equal(t, domproperty.NamespaceXLink, row.Namespace)
	assert.Equal(t, "none", row.Kind)
}

func TestRun_LookupMissingWithHint(t *testing.T) {
	a, _, logs := newTestApp(t, Config{Lookup: "autofocus"})
	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Contains(t, err.Error(), "did you mean autoFocus?")
	assert.Contains(t, logs.String(), "did_you_mean=autoFocus")

	a, _, _ = newTestApp(t, Config{Lookup: "autofocus", Mode: domproperty.ModeProduction})
	err = a.Run(context.Background())
	require.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRun_Custom(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Custom: "data-foo"})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "data-foo: custom=true\n", out.String())

	a, out, _ = newTestApp(t, Config{Custom: "onclick"})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "onclick: custom=false\n", out.String())
}

func TestRun_DumpSorted(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Format: FormatJSON})
	require.NoError(t, a.Run(context.Background()))

	var rows []propertyRow
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Equal(t, a.Registry().Len(), len(rows))
	for i := 1; i < len(rows); i++ {
		assert.True(t, strings.Compare(rows[i-1].Name, rows[i].Name) < 0, "rows must be sorted")
	}
}

func TestNewConfig_Validation(t *testing.T) {
	_, err := NewConfig(Config{NoBuiltins: true})
	require.Error(t, err)

	_, err = NewConfig(Config{Lookup: "a", Custom: "b"})
	require.Error(t, err)

	_, err = NewConfig(Config{Format: "xml"})
	require.Error(t, err)

	c, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, FormatTable, c.Format)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "info", c.LogLevel)
}
