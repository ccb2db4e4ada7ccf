package cssom_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/cssom"
	"github.com/npillmayer/querysandbox/style/cssom/douceuradapter"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSS = `
Playground {
    border: panel cornflowerblue;
    color: white;
}
Playground * {
    margin: 1;
    border: panel red 40%;
}
.hit {
    border: panel green !important;
    background: green 10%;
}
#one {
    border: round yellow;
}
Vertical.foo {
    text-style: bold;
}
@media print { Vertical { color: black; } }
`

func newCSSOM(t *testing.T, text string) *cssom.CSSOM {
	sheet, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	c := cssom.NewCSSOM(nil)
	skipped, err := c.AddStylesForScope(sheet)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	return c
}

func TestCSSOMCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	c := newCSSOM(t, testCSS)
	assert.Equal(t, 5, c.RuleCount()) // at-rule left out
	screen := widget.NewScreen(widget.Nesting())
	pg := widget.Playgrounds(screen)[0]
	styles, err := c.Style(screen)
	require.NoError(t, err)
	//
	assert.Equal(t, style.Property("cornflowerblue"), styles.GetProperty(pg, "border-color"))
	two := pg.FindByID("two")
	assert.Equal(t, style.Property("red 40%"), styles.GetProperty(two, "border-color"))
	assert.Equal(t, style.Property("1"), styles.GetProperty(two, "margin-left"))
	assert.Equal(t, style.Property("white"), styles.GetProperty(two, "color"), "color is inherited")
	assert.Equal(t, style.Property("none"), styles.GetProperty(pg, "text-style"))
	// #one has higher specificity than `Playground *`
	one := pg.FindByID("one")
	assert.Equal(t, style.Property("round"), styles.GetProperty(one, "border-style"))
	assert.Equal(t, style.Property("bold"), styles.GetProperty(one, "text-style"))
	assert.Equal(t, style.Property("bold"), styles.GetProperty(two, "text-style"), "text-style is inherited")
	// not cascading
	assert.Equal(t, style.Property("default"), styles.GetProperty(screen, "background-color"))
	assert.Equal(t, style.Property("none"), styles.GetProperty(screen, "border-style"))
}

func TestCSSOMImportantHit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	c := newCSSOM(t, testCSS)
	screen := widget.NewScreen(widget.Nesting())
	one := screen.FindByID("one")
	one.SetHit(true)
	styles, err := c.Style(screen)
	require.NoError(t, err)
	// !important beats the higher specificity of #one
	assert.Equal(t, style.Property("panel"), styles.GetProperty(one, "border-style"))
	assert.Equal(t, style.Property("green"), styles.GetProperty(one, "border-color"))
	assert.Equal(t, style.Property("green 10%"), styles.GetProperty(one, "background-color"))
	//
	one.SetHit(false) // styles are recomputed per call
	styles, err = c.Style(screen)
	require.NoError(t, err)
	assert.Equal(t, style.Property("round"), styles.GetProperty(one, "border-style"))
}

func TestCSSOMSkipsBadSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`#ok, :::bad { color: red; }`)
	require.NoError(t, err)
	c := cssom.NewCSSOM(nil)
	skipped, err := c.AddStylesForScope(sheet)
	assert.Equal(t, 1, skipped)
	assert.Error(t, err)
	assert.Equal(t, 1, c.RuleCount())
	c.Reset()
	assert.Equal(t, 0, c.RuleCount())
	_, err = c.AddStylesForScope(nil)
	assert.ErrorIs(t, err, cssom.ErrNoStyleSheet)
}

func TestBoxRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	lipgloss.SetColorProfile(termenv.Ascii)
	//
	c := newCSSOM(t, testCSS)
	screen := widget.NewScreen(widget.Nesting())
	styles, err := c.Style(screen)
	require.NoError(t, err)
	innermost := screen.FindByID("innermost")
	box := styles.Box(innermost)
	assert.True(t, box.HasBorder())
	out := box.Render("", innermost.Title())
	t.Logf("\n%s", out)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5) // margin, top border with title, body, bottom border, margin
	assert.Contains(t, lines[1], "Vertical#innermost.foo.baz")
	assert.Contains(t, lines[1], "┌─")
	//
	narrow := styles.Box(innermost)
	narrow.Width = 10
	out = narrow.Render("", innermost.Title())
	t.Logf("\n%s", out)
	assert.Contains(t, out, "…")
	//
	hidden := styles.Box(screen)
	hidden.Hidden = true
	assert.Equal(t, "", hidden.Render("x", "title"))
}
