package style_test

import (
	"testing"

	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("padding", "1 2")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{
		{Key: "padding-top", Value: "1"},
		{Key: "padding-right", Value: "2"},
		{Key: "padding-bottom", Value: "1"},
		{Key: "padding-left", Value: "2"},
	}, kvs)
	kvs, err = style.SplitCompoundProperty("border", "panel red 40%")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{
		{Key: "border-style", Value: "panel"},
		{Key: "border-color", Value: "red 40%"},
	}, kvs)
	_, err = style.SplitCompoundProperty("margin", "1 2 3 4 5")
	assert.Error(t, err)
	_, err = style.SplitCompoundProperty("color", "red")
	assert.Error(t, err)
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	pmap := style.NewPropertyMap()
	pmap.Set("margin", "1")
	pmap.Set("Background", "Green 10%") // unknown key goes to group X
	pmap.Set("background", "Green 10%")
	pmap.Add("margin-top", "5") // already set
	p, ok := pmap.Property("margin-top")
	assert.True(t, ok)
	assert.Equal(t, style.Property("1"), p)
	p, _ = pmap.Property("background-color")
	assert.Equal(t, style.Property("green 10%"), p)
	assert.NotNil(t, pmap.Group(style.PGX))
	assert.Equal(t, style.PGMargins, style.GroupNameFromPropertyKey("margin-left"))
	assert.True(t, style.IsCascading("color"))
	assert.False(t, style.IsCascading("border-style"))
	//
	var nilmap *style.PropertyMap
	assert.Equal(t, 0, nilmap.Size())
	_, ok = nilmap.Property("color")
	assert.False(t, ok)
}

func TestPropertyGroupCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	root := style.NewPropertyGroup(style.PGColor)
	root.Set("color", "red")
	child := style.NewPropertyGroup(style.PGColor)
	child.Parent = root
	assert.Equal(t, root, child.Cascade("color"))
	assert.Nil(t, child.Cascade("background-color"))
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	c, alpha, ok := style.Property("cornflowerblue").Color()
	require.True(t, ok)
	assert.Equal(t, 1.0, alpha)
	assert.Equal(t, "#6495ed", c.Hex())
	c, alpha, ok = style.Property("#f00 40%").Color()
	require.True(t, ok)
	assert.InDelta(t, 0.4, alpha, 0.0001)
	assert.Equal(t, "#ff0000", c.Hex())
	_, _, ok = style.Property("default").Color()
	assert.False(t, ok)
	_, _, ok = style.Property("red 40").Color()
	assert.False(t, ok)
	//
	black, _, _ := style.Property("black").Color()
	blended, ok := style.Property("#ffffff 50%").ColorOver(black)
	require.True(t, ok)
	r, g, b := blended.RGB255()
	assert.InDelta(t, 127, int(r), 1)
	assert.InDelta(t, 127, int(g), 1)
	assert.InDelta(t, 127, int(b), 1)
}

func TestCellsAndFlags(t *testing.T) {
	n, ok := style.Property("3").Cells()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	n, ok = style.Property("12ch").Cells()
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	_, ok = style.Property("auto").Cells()
	assert.False(t, ok)
	assert.Equal(t, map[string]bool{"bold": true, "italic": true}, style.Property("bold italic").Flags())
	assert.Empty(t, style.Property("none").Flags())
}
