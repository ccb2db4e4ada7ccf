package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	pg := widget.Lists()
	ok := pg.FindByID("ok")
	ok.SetHit(true)
	styles := css.NewStyles(nil)
	pmap := style.NewPropertyMap()
	pmap.Set("border", "round red")
	styles.Set(ok, pmap)
	//
	var sb strings.Builder
	require.NoError(t, ToGraphViz(pg, &sb, styles, nil))
	dot := sb.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="Static#ok.button.primary" shape=ellipse style=filled fillcolor=palegreen3`)
	assert.Contains(t, dot, `label="Vertical#menu.list" shape=ellipse style=filled fillcolor=lightblue3`)
	assert.Contains(t, dot, `<td align="right">border-style:</td><td>round</td>`)
	assert.Equal(t, 1, strings.Count(dot, "palegreen3"))
	// one edge per widget below the playground, 6 of them with text
	assert.Equal(t, len(pg.Descendents()), strings.Count(dot, "[weight=1]"))
	assert.Equal(t, 6, strings.Count(dot, "shape=box"))
	//
	assert.Error(t, ToGraphViz(nil, &sb, nil, nil))
}
