/*
Package report renders the outcome of a query for display.

A report is either a list of the matched widgets, one line per widget, or
the error of a failed query. Every report also carries a snapshot of the
scope's subtree, with hit widgets flagged. Snapshots are computed afresh
for every report, thus they always reflect the current hit markers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"fmt"
	"strings"

	"github.com/npillmayer/querysandbox/query"
	"github.com/npillmayer/querysandbox/result"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xlab/treeprint"
)

// tracer traces with key 'sandbox.report'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.report")
}

// HitMeta is the meta value flagging hit widgets in snapshots.
const HitMeta = "hit"

// Report is the renderable outcome of a query. Either Err is set or
// Matches holds the matched widgets (possibly none).
type Report struct {
	Scope    string   // name of the scope
	Matches  []string // one line per matched widget
	Err      error    // error of a failed query
	Snapshot string   // tree of the scope with hits flagged
}

// Render creates a report for the result of a query within scope.
func Render(scope *widget.Widget, res result.Result[query.Selection]) Report {
	rep := Report{}
	if scope != nil {
		rep.Scope = scope.Name()
	}
	var sel query.Selection
	var err error
	switch m := res.Match(); m {
	case m.Ok(&sel):
		rep.Matches = make([]string, 0, len(sel))
		for _, w := range sel {
			rep.Matches = append(rep.Matches, Line(w))
		}
	case m.Err(&err):
		rep.Err = err
	}
	rep.Snapshot = Snapshot(scope)
	tracer().Debugf("rendered report for %s: %d matches, error = %v", rep.Scope, len(rep.Matches), rep.Err)
	return rep
}

// Line returns the report line for a widget: its label, followed by the
// path of its parent.
func Line(w *widget.Widget) string {
	if p := w.Parent(); p != nil {
		return fmt.Sprintf("%s  in %s", w.Label(), p.Path())
	}
	return w.Label()
}

// IsError is true for reports of failed queries.
func (rep Report) IsError() bool {
	return rep.Err != nil
}

// String renders the textual part of a report: a list of matches in
// brackets, or the kind and message of an error.
func (rep Report) String() string {
	if rep.Err != nil {
		return fmt.Sprintf("%s: %s", query.Kind(rep.Err), rep.Err.Error())
	}
	if len(rep.Matches) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, line := range rep.Matches {
		sb.WriteString("    ")
		sb.WriteString(line)
		sb.WriteString(",\n")
	}
	sb.WriteString("]")
	return sb.String()
}

// Summary returns a one-line summary of a report.
func (rep Report) Summary() string {
	switch len(rep.Matches) {
	case 0:
		if rep.Err != nil {
			return "query failed"
		}
		return "no matches"
	case 1:
		return "1 match"
	}
	return fmt.Sprintf("%d matches", len(rep.Matches))
}

// Snapshot dumps the subtree of scope, flagging widgets with their hit
// marker set.
func Snapshot(scope *widget.Widget) string {
	if scope == nil {
		return ""
	}
	root := treeprint.NewWithRoot(scope.Label())
	if scope.Hit() {
		root.SetMetaValue(HitMeta)
	}
	addChildren(root, scope)
	return root.String()
}

func addChildren(branch treeprint.Tree, w *widget.Widget) {
	for _, ch := range w.Children() {
		var node treeprint.Tree
		if ch.Hit() {
			node = branch.AddMetaBranch(HitMeta, ch.Label())
		} else {
			node = branch.AddBranch(ch.Label())
		}
		addChildren(node, ch)
	}
}
