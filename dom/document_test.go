package dom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/querysandbox/dom"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestProjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	screen := widget.DefaultScreen()
	pg := widget.Playgrounds(screen)[0]
	doc, err := dom.Project(pg) // projects the whole tree, starting at the screen
	require.NoError(t, err)
	assert.Equal(t, screen, doc.Root())
	assert.Equal(t, html.DocumentNode, doc.HTML().Type)
	//
	screen.Walk(func(w *widget.Widget) {
		sh := w.Shadow()
		require.NotNil(t, sh, "widget %s not bound", w)
		assert.Equal(t, html.ElementNode, sh.Type)
		assert.Equal(t, w.ElementName(), sh.Data)
	})
	innermost := pg.FindByID("innermost")
	sh := innermost.Shadow()
	assert.Equal(t, []html.Attribute{
		{Key: "id", Val: "innermost"},
		{Key: "class", Val: "foo baz"},
	}, sh.Attr)
	assert.Equal(t, "vertical", sh.Parent.Data)
	//
	doc2, err := dom.Project(screen) // re-use existing projection
	require.NoError(t, err)
	assert.Equal(t, doc.HTML(), doc2.HTML())
}

func TestProjectionRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	doc, err := dom.Project(widget.NewScreen(widget.Lists()))
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, doc.Render(&sb))
	out := sb.String()
	t.Logf("shadow DOM = %s", out)
	assert.Contains(t, out, `<static id="ok" class="button primary">OK</static>`)
}

func TestStaleProjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	pg := widget.NewPlayground("p")
	screen := widget.NewScreen(pg)
	_, err := dom.Project(screen)
	require.NoError(t, err)
	require.NoError(t, pg.AddChild(widget.NewLeaf("Vertical", widget.ID("late"))))
	_, err = dom.Project(screen)
	assert.True(t, errors.Is(err, dom.ErrStaleProjection))
	_, err = dom.Project(nil)
	assert.True(t, errors.Is(err, dom.ErrNoWidget))
}

func TestLookupIsScoped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	screen := widget.DefaultScreen()
	_, err := dom.Project(screen)
	require.NoError(t, err)
	pgs := widget.Playgrounds(screen)
	lookup := dom.LookupFor(pgs[0])
	assert.Len(t, lookup, 9) // playground + 8 descendents
	w, ok := lookup.Widget(pgs[0].FindByID("four").Shadow())
	assert.True(t, ok)
	assert.Equal(t, "four", w.ID())
	_, ok = lookup.Widget(pgs[1].FindByID("menu").Shadow())
	assert.False(t, ok)
}

func TestMarked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.dom")
	defer teardown()
	//
	pg := widget.Nesting()
	pg.SetHit(true)
	pg.FindByID("two").SetHit(true)
	pg.FindByID("innermost").SetHit(true)
	marked := dom.Marked(pg)
	require.Len(t, marked, 3)
	assert.Equal(t, pg, marked[0])
	assert.Equal(t, "two", marked[1].ID())
	assert.Equal(t, "innermost", marked[2].ID())
}
