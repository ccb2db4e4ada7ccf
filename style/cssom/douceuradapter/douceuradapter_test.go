package douceuradapter

import (
	"testing"

	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSelectorList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	sheet, err := Parse(`#one, .foo { margin: 1; color: red !important; margin: 2 }
@media print { Vertical { color: black; } }`)
	require.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 1, "at-rules are left out")
	var r cssom.Rule = rules[0]
	assert.Equal(t, "#one, .foo", r.Selector())
	assert.Equal(t, []string{"#one", ".foo"}, r.SelectorList())
	assert.Equal(t, []string{"margin", "color", "margin"}, r.Properties())
	assert.Equal(t, style.Property("2"), r.Value("margin"))
	assert.True(t, r.IsImportant("color"))
	assert.False(t, r.IsImportant("margin"))
}

func TestRuleSelectorListFromPrelude(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.style")
	defer teardown()
	//
	r := Rule{Prelude: " Playground * ,, Static "}
	assert.Equal(t, []string{"Playground *", "Static"}, r.SelectorList())
}
