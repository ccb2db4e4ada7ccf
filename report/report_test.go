package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/querysandbox/highlight"
	"github.com/npillmayer/querysandbox/query"
	"github.com/npillmayer/querysandbox/report"
	"github.com/npillmayer/querysandbox/result"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.report")
	defer teardown()
	//
	pg := widget.NewScreen(widget.Nesting()).FindByID("one").Parent()
	res := query.Evaluate(nil, pg, "#innermost")
	sel, err := res.Get()
	require.NoError(t, err)
	highlight.Clear(pg)
	highlight.Mark(sel)
	rep := report.Render(pg, res)
	assert.False(t, rep.IsError())
	assert.Equal(t, "nesting", rep.Scope)
	require.Len(t, rep.Matches, 1)
	assert.Equal(t, "Vertical#innermost.foo.baz  in Playground/Vertical#one.foo.bar/Vertical#two/Vertical#four",
		rep.Matches[0])
	assert.Equal(t, "[\n    "+rep.Matches[0]+",\n]", rep.String())
	assert.Equal(t, "1 match", rep.Summary())
	//
	t.Logf("snapshot:\n%s", rep.Snapshot)
	lines := strings.Split(strings.TrimSpace(rep.Snapshot), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Playground", lines[0])
	hits := 0
	for _, l := range lines {
		if strings.Contains(l, "[hit]") {
			hits++
			assert.Contains(t, l, "Vertical#innermost.foo.baz")
		}
	}
	assert.Equal(t, 1, hits)
}

func TestReportEmptyAndError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.report")
	defer teardown()
	//
	pg := widget.Nesting()
	rep := report.Render(pg, result.Ok(query.Selection{}))
	assert.Equal(t, "[]", rep.String())
	assert.Equal(t, "no matches", rep.Summary())
	//
	res := query.Evaluate(nil, pg, ":::bad")
	rep = report.Render(pg, res)
	require.True(t, rep.IsError())
	_, err := res.Get()
	assert.Equal(t, "SelectorError: "+err.Error(), rep.String())
	assert.Equal(t, "query failed", rep.Summary())
	assert.NotContains(t, rep.Snapshot, "[hit]")
	//
	rep = report.Render(nil, result.Err[query.Selection](errors.New("oops")))
	assert.Equal(t, "Error: oops", rep.String())
	assert.Equal(t, "", rep.Snapshot)
}
