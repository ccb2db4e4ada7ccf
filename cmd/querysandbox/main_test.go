package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/querysandbox/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	var out strings.Builder
	err := runQuery(config.New(), &out, "#innermost", "", true)
	require.NoError(t, err)
	t.Logf("\n%s", out.String())
	assert.True(t, strings.HasPrefix(out.String(), "nesting: #innermost (1 match)\n[\n"))
	assert.Contains(t, out.String(), "[hit]  Vertical#innermost.foo.baz")
	//
	out.Reset()
	err = runQuery(config.New(), &out, ".button", "lists", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Static#ok.button.primary  in Playground/Horizontal#toolbar")
	assert.NotContains(t, out.String(), "[hit]")
	//
	out.Reset()
	err = runQuery(config.New(), &out, ":::bad", "", false)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "SelectorError: ")
	//
	err = runQuery(config.New(), &out, "*", "nope", false)
	assert.Error(t, err)
}

func TestRunQueryWithPlaygroundFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "pg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
playgrounds:
  - name: mine
    children:
      - type: Vertical
        id: outer
        children:
          - type: Static
            classes: [greeting]
            text: Hello
`), 0o600))
	conf := config.New()
	conf.Set(config.KeyPlaygrounds, path)
	var out strings.Builder
	require.NoError(t, runQuery(conf, &out, ".greeting", "", false))
	assert.Contains(t, out.String(), "mine: .greeting (1 match)")
	assert.Contains(t, out.String(), "Static.greeting  in Playground/Vertical#outer")
}

func TestRunDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	var out strings.Builder
	require.NoError(t, runDot(config.New(), &out, "grid", ".diagonal", true))
	dot := out.String()
	assert.Equal(t, 3, strings.Count(dot, "palegreen3"))
	assert.Contains(t, dot, "border-style:")
	//
	assert.Error(t, runDot(config.New(), &out, "", ":::bad", false))
}

func TestRootCommandFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	conf := config.New()
	conf.Set(config.KeyDestination, "stderr")
	root := newRootCommand(conf)
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"query", "--color", "ascii", "--snapshot=false", "#four"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "ascii", conf.Color())
	assert.Contains(t, out.String(), "Vertical#four")
	//
	conf = config.New()
	conf.Set(config.KeyDestination, "stderr")
	root = newRootCommand(conf)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"query", "--color", "sepia", "*"})
	assert.Error(t, root.Execute())
}
