package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/querysandbox/tree"
	"github.com/npillmayer/querysandbox/widget"
	"golang.org/x/net/html"
)

// ErrNoWidget is returned when a document is requested for a nil widget.
var ErrNoWidget = errors.New("no widget given")

// ErrStaleProjection is returned if widgets have been added to a tree after
// it has been projected.
var ErrStaleProjection = errors.New("widget tree changed after projection")

// Document is the shadow DOM of a widget tree.
type Document struct {
	root *widget.Widget
	html *html.Node // DocumentNode
}

// Project builds the shadow DOM for the complete tree w belongs to. All
// widgets of the tree get bound to their shadow nodes. If the tree has
// already been projected, the existing shadow tree is reused.
func Project(w *widget.Widget) (*Document, error) {
	if w == nil {
		return nil, ErrNoWidget
	}
	root := w
	for p := root.Parent(); p != nil; p = p.Parent() {
		root = p
	}
	if sh := root.Shadow(); sh != nil && sh.Parent != nil {
		detached, err := tree.NewWalker(root.TreeNode()).DescendentsWith(NodeIsDetached).Promise()()
		if err != nil {
			return nil, err
		}
		if len(detached) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrStaleProjection, widget.FromTreeNode(detached[0]).Path())
		}
		return &Document{root: root, html: sh.Parent}, nil
	}
	doc := &html.Node{Type: html.DocumentNode}
	n := 0
	doc.AppendChild(project(root, &n))
	tracer().P("root", root.Label()).Debugf("projected %d widgets onto shadow DOM", n)
	return &Document{root: root, html: doc}, nil
}

func project(w *widget.Widget, count *int) *html.Node {
	el := &html.Node{
		Type: html.ElementNode,
		Data: w.ElementName(),
	}
	w.Bind(el)
	*count++
	if w.Kind() == widget.LabeledLeaf && w.Text() != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: w.Text()})
	}
	for _, ch := range w.Children() {
		el.AppendChild(project(ch, count))
	}
	return el
}

// Root returns the root widget of the document.
func (doc *Document) Root() *widget.Widget {
	return doc.root
}

// HTML returns the document node of the shadow DOM.
func (doc *Document) HTML() *html.Node {
	return doc.html
}

// Render writes the shadow DOM as HTML, mainly for debugging.
func (doc *Document) Render(w io.Writer) error {
	if err := html.Render(w, doc.html); err != nil {
		return fmt.Errorf("rendering shadow DOM: %w", err)
	}
	return nil
}

// --- Mapping back to widgets -----------------------------------------------

// Lookup maps shadow nodes back to the widgets of a (sub-)tree.
type Lookup map[*html.Node]*widget.Widget

// LookupFor creates a lookup table for scope and all of its descendents.
// Shadow nodes of widgets outside of scope are not contained.
func LookupFor(scope *widget.Widget) Lookup {
	lookup := make(Lookup)
	if scope == nil {
		return lookup
	}
	scope.Walk(func(w *widget.Widget) {
		if sh := w.Shadow(); sh != nil {
			lookup[sh] = w
		}
	})
	return lookup
}

// Widget returns the widget for a shadow node, if it is part of the lookup.
func (l Lookup) Widget(n *html.Node) (*widget.Widget, bool) {
	w, ok := l[n]
	return w, ok
}
