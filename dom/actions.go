package dom

import (
	"github.com/npillmayer/querysandbox/tree"
	"github.com/npillmayer/querysandbox/widget"
)

// NodeIsMarked is a predicate to match widgets with their hit marker set.
// It is intended to be used in a tree.Walker.
var NodeIsMarked = func(n *tree.Node[*widget.Widget], unused *tree.Node[*widget.Widget]) (
	match *tree.Node[*widget.Widget], err error) {
	//
	if w := widget.FromTreeNode(n); w != nil && w.Hit() {
		return n, nil
	}
	return nil, nil
}

// NodeIsDetached is a predicate to match widgets which are not (yet) bound
// to a shadow node.
var NodeIsDetached = func(n *tree.Node[*widget.Widget], unused *tree.Node[*widget.Widget]) (
	match *tree.Node[*widget.Widget], err error) {
	//
	if w := widget.FromTreeNode(n); w != nil && w.Shadow() == nil {
		return n, nil
	}
	return nil, nil
}

// Marked returns all widgets within scope (including scope) with their hit
// marker set, in document order.
func Marked(scope *widget.Widget) []*widget.Widget {
	if scope == nil {
		return nil
	}
	var marked []*widget.Widget
	if scope.Hit() {
		marked = append(marked, scope)
	}
	nodes, err := tree.NewWalker(scope.TreeNode()).DescendentsWith(NodeIsMarked).Promise()()
	if err != nil {
		tracer().Errorf("collecting marked widgets: %v", err)
		return marked
	}
	for _, n := range nodes {
		marked = append(marked, widget.FromTreeNode(n))
	}
	return marked
}
