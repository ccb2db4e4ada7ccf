package highlight_test

import (
	"testing"

	"github.com/npillmayer/querysandbox/highlight"
	"github.com/npillmayer/querysandbox/query"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.highlight")
	defer teardown()
	//
	pg := widget.Nesting()
	pg.SetHit(true)
	pg.FindByID("two").SetHit(true)
	pg.FindByID("three-1").SetHit(true)
	assert.Equal(t, 3, highlight.Clear(pg))
	assert.Empty(t, highlight.Marked(pg))
	assert.Equal(t, 0, highlight.Clear(pg))
	assert.Empty(t, highlight.Marked(pg))
	assert.Equal(t, 0, highlight.Clear(nil))
}

func TestMarkAfterClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.highlight")
	defer teardown()
	//
	pg := widget.Nesting()
	pg.FindByID("one").SetHit(true) // stale marker
	sel, err := query.Evaluate(nil, pg, ".wibble").Get()
	require.NoError(t, err)
	highlight.Clear(pg)
	highlight.Mark(sel)
	assert.Equal(t, sel.Labels(), highlight.Marked(pg).Labels())
	// shadow DOM mirrors the marker
	sel2, err := query.Evaluate(nil, pg, ".hit").Get()
	require.NoError(t, err)
	assert.Equal(t, sel.Labels(), sel2.Labels())
}

func TestClearLeavesOtherScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.highlight")
	defer teardown()
	//
	screen := widget.DefaultScreen()
	pgs := widget.Playgrounds(screen)
	menu := pgs[1].FindByID("menu")
	menu.SetHit(true)
	pgs[0].FindByID("two").SetHit(true)
	assert.Equal(t, 1, highlight.Clear(pgs[0]))
	assert.True(t, menu.Hit())
}
