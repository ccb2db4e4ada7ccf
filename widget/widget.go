package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/querysandbox/tree"
	"golang.org/x/net/html"
)

// HitClass is the class the hit marker is mirrored to on shadow nodes.
const HitClass = "hit"

// Common widget type names.
const (
	TypeScreen     = "Screen"
	TypePlayground = "Playground"
	TypeVertical   = "Vertical"
	TypeHorizontal = "Horizontal"
	TypeStatic     = "Static"
)

// ErrLeafHasNoChildren is returned when adding children to a leaf widget.
var ErrLeafHasNoChildren = errors.New("leaf widgets cannot have children")

// ErrNoType is returned for widgets without a type name.
var ErrNoType = errors.New("widget must have a type name")

// Kind is the closed set of widget kinds.
type Kind uint8

const (
	Container   Kind = iota // may have children
	Leaf                    // no children, no content
	LabeledLeaf             // no children, renders a text label
)

func (k Kind) String() string {
	switch k {
	case Container:
		return "container"
	case Leaf:
		return "leaf"
	case LabeledLeaf:
		return "labeled-leaf"
	}
	return "<unknown>"
}

// Widget is a node of a widget tree.
type Widget struct {
	tree.Node[*Widget] // we build on top of general purpose tree
	kind               Kind
	typ                string   // type name, e.g. "Vertical"
	id                 string   // optional identifier
	classes            []string // labels
	name               string   // optional name, used for playground tabs
	title              string   // optional explicit border title
	text               string   // content of labeled leafs
	hit                bool     // hit marker
	shadow             *html.Node
}

// Option configures a widget during construction.
type Option func(*Widget)

// ID sets the identifier of a widget.
func ID(id string) Option {
	return func(w *Widget) {
		w.id = id
	}
}

// Classes adds classes to a widget. Every argument may hold more than one
// class, separated by whitespace. Duplicates are dropped.
func Classes(classes ...string) Option {
	return func(w *Widget) {
		for _, c := range classes {
			for _, cls := range strings.Fields(c) {
				if !w.HasClass(cls) {
					w.classes = append(w.classes, cls)
				}
			}
		}
	}
}

// Name sets the name of a widget. Playgrounds use it as their tab label.
func Name(name string) Option {
	return func(w *Widget) {
		w.name = name
	}
}

// Title sets an explicit border title.
func Title(title string) Option {
	return func(w *Widget) {
		w.title = title
	}
}

func newWidget(kind Kind, typ string, opts ...Option) *Widget {
	w := &Widget{kind: kind, typ: typ}
	w.Payload = w // Payload will always reference the widget itself
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewContainer creates a widget which may hold children.
func NewContainer(typ string, opts ...Option) *Widget {
	return newWidget(Container, typ, opts...)
}

// NewLeaf creates a widget without children and content.
func NewLeaf(typ string, opts ...Option) *Widget {
	return newWidget(Leaf, typ, opts...)
}

// NewLabeledLeaf creates a widget without children, displaying text.
func NewLabeledLeaf(typ string, text string, opts ...Option) *Widget {
	w := newWidget(LabeledLeaf, typ, opts...)
	w.text = text
	return w
}

// FromTreeNode gets the widget from a generic tree node.
func FromTreeNode(n *tree.Node[*Widget]) *Widget {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of a widget.
func (w *Widget) TreeNode() *tree.Node[*Widget] {
	return &w.Node
}

// AddChild appends a child widget.
func (w *Widget) AddChild(ch *Widget) error {
	if w.kind != Container {
		return fmt.Errorf("%s: %w", w.Label(), ErrLeafHasNoChildren)
	}
	if ch == nil {
		return nil
	}
	if _, err := w.Node.AddChild(&ch.Node); err != nil {
		return fmt.Errorf("adding %s to %s: %w", ch.Label(), w.Label(), err)
	}
	return nil
}

// With appends children and returns w, for building static trees.
// It panics if a child cannot be added, which is a programming error for
// hard-wired trees.
func (w *Widget) With(children ...*Widget) *Widget {
	for _, ch := range children {
		if err := w.AddChild(ch); err != nil {
			panic(err)
		}
	}
	return w
}

// Parent returns the parent widget or nil for the root.
func (w *Widget) Parent() *Widget {
	return FromTreeNode(w.Node.Parent())
}

// Children returns the child widgets in order.
func (w *Widget) Children() []*Widget {
	nodes := w.Node.Children()
	children := make([]*Widget, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			children = append(children, n.Payload)
		}
	}
	return children
}

// Contains is a predicate: is other equal to w or one of its descendents?
func (w *Widget) Contains(other *Widget) bool {
	if w == nil || other == nil {
		return false
	}
	return w.Node.Contains(&other.Node)
}

// Kind returns the kind of a widget.
func (w *Widget) Kind() Kind { return w.kind }

// Type returns the type name of a widget.
func (w *Widget) Type() string { return w.typ }

// ID returns the identifier of a widget, which may be empty.
func (w *Widget) ID() string { return w.id }

// Text returns the content of a labeled leaf.
func (w *Widget) Text() string { return w.text }

// Classes returns a copy of the classes of a widget.
func (w *Widget) Classes() []string {
	return append([]string(nil), w.classes...)
}

// HasClass is a predicate for class membership.
func (w *Widget) HasClass(cls string) bool {
	for _, c := range w.classes {
		if c == cls {
			return true
		}
	}
	return false
}

// Name returns the name of a widget, defaulting to its label.
func (w *Widget) Name() string {
	if w.name != "" {
		return w.name
	}
	return w.Label()
}

// Label returns a selector-like representation of a widget, e.g.
//
//    Vertical#one.foo.bar
func (w *Widget) Label() string {
	var sb strings.Builder
	sb.WriteString(w.typ)
	if w.id != "" {
		sb.WriteString("#")
		sb.WriteString(w.id)
	}
	for _, c := range w.classes {
		sb.WriteString(".")
		sb.WriteString(c)
	}
	return sb.String()
}

// Title returns the border title of a widget: the explicit title, if set,
// otherwise its label.
func (w *Widget) Title() string {
	if w.title != "" {
		return w.title
	}
	return w.Label()
}

// Path returns the structural path from the root to w, e.g.
//
//    Playground/Vertical#one/Vertical#two
//
// A screen root is omitted. Siblings without id or name sharing the same
// label are told apart by their position, e.g. `Static.item[2]`.
func (w *Widget) Path() string {
	var segments []string
	for n := w; n != nil; n = n.Parent() {
		if n.Parent() == nil && n.typ == TypeScreen && n != w {
			break
		}
		segments = append(segments, n.pathSegment())
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

func (w *Widget) pathSegment() string {
	label := w.Label()
	p := w.Parent()
	if w.id != "" || w.name != "" || p == nil {
		return label
	}
	same, pos := 0, 0
	for _, sibling := range p.Children() {
		if sibling.Label() == label {
			if sibling == w {
				pos = same
			}
			same++
		}
	}
	if same > 1 {
		return fmt.Sprintf("%s[%d]", label, pos)
	}
	return label
}

func (w *Widget) String() string {
	return w.Label()
}

// --- Hit marker ------------------------------------------------------------

// Hit returns the hit marker.
func (w *Widget) Hit() bool { return w.hit }

// SetHit sets or clears the hit marker. A bound shadow node is updated
// accordingly.
func (w *Widget) SetHit(on bool) {
	if w.hit == on {
		return
	}
	w.hit = on
	if w.shadow != nil {
		w.shadow.Attr = w.Attributes()
	}
}

// --- Shadow node -----------------------------------------------------------

// ElementName is the element name of the shadow node. Selector engines
// compare type selectors case-insensitively against lower-case names.
func (w *Widget) ElementName() string {
	return strings.ToLower(w.typ)
}

// Attributes returns the attributes of the shadow node: id and class,
// with the hit marker mirrored as class HitClass.
func (w *Widget) Attributes() []html.Attribute {
	var attrs []html.Attribute
	if w.id != "" {
		attrs = append(attrs, html.Attribute{Key: "id", Val: w.id})
	}
	classes := w.Classes()
	if w.hit && !w.HasClass(HitClass) {
		classes = append(classes, HitClass)
	}
	if len(classes) > 0 {
		attrs = append(attrs, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return attrs
}

// Bind links a widget to its shadow node.
func (w *Widget) Bind(n *html.Node) {
	w.shadow = n
	if n != nil {
		n.Attr = w.Attributes()
	}
}

// Shadow returns the shadow node a widget is bound to, if any.
func (w *Widget) Shadow() *html.Node {
	return w.shadow
}

// --- Tree helpers ----------------------------------------------------------

// Walk calls f for w and all of its descendents in document order.
func (w *Widget) Walk(f func(*Widget)) {
	action := func(n *tree.Node[*Widget], _ *tree.Node[*Widget], _ int) (*tree.Node[*Widget], error) {
		f(n.Payload)
		return nil, nil
	}
	_, _ = tree.NewWalker(&w.Node).TopDown(action).Promise()()
}

// Descendents returns all descendents of w in document order, excluding w.
func (w *Widget) Descendents() []*Widget {
	nodes, err := tree.NewWalker(&w.Node).AllDescendents().Promise()()
	if err != nil {
		tracer().Errorf("collecting descendents of %s: %v", w, err)
		return nil
	}
	widgets := make([]*Widget, len(nodes))
	for i, n := range nodes {
		widgets[i] = n.Payload
	}
	return widgets
}

// FindByID returns the first widget with the given id within w, in document
// order, including w itself.
func (w *Widget) FindByID(id string) *Widget {
	var found *Widget
	w.Walk(func(n *Widget) {
		if found == nil && n.id == id {
			found = n
		}
	})
	return found
}
