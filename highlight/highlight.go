/*
Package highlight manages the hit markers of widgets.

Every query evaluation in the sandbox starts by clearing all hit markers of
the active scope, then marks exactly the widgets selected by the query.
Marker state thus never leaks from one query to the next, nor from one
scope to another.

Hit markers are mirrored to the shadow DOM as class "hit", which allows
stylesheets to style hits with a rule like `.hit { … }`. As clearing
always precedes evaluation, a query for `.hit` never sees stale markers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package highlight

import (
	"github.com/npillmayer/querysandbox/dom"
	"github.com/npillmayer/querysandbox/query"
	"github.com/npillmayer/querysandbox/tree"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.highlight'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.highlight")
}

// Clear removes the hit marker from scope and all of its descendents.
// It returns the number of widgets which had a marker set. Clear is
// idempotent.
func Clear(scope *widget.Widget) int {
	if scope == nil {
		return 0
	}
	cleared := 0
	unmark := func(n *tree.Node[*widget.Widget], _ *tree.Node[*widget.Widget], _ int) (*tree.Node[*widget.Widget], error) {
		if w := widget.FromTreeNode(n); w.Hit() {
			w.SetHit(false)
			cleared++
		}
		return nil, nil
	}
	if _, err := tree.NewWalker(scope.TreeNode()).TopDown(unmark).Promise()(); err != nil {
		tracer().Errorf("clearing hit markers: %v", err)
	}
	tracer().P("scope", scope.Label()).Debugf("cleared %d hit markers", cleared)
	return cleared
}

// Mark sets the hit marker on exactly the given widgets. It does not clear
// any other markers; clients call Clear beforehand.
func Mark(nodes query.Selection) {
	for _, w := range nodes {
		if w != nil {
			w.SetHit(true)
		}
	}
	tracer().Debugf("marked %d widgets", len(nodes))
}

// Marked returns the widgets within scope (including scope) which have
// their hit marker set, in document order.
func Marked(scope *widget.Widget) query.Selection {
	return query.Selection(dom.Marked(scope))
}
