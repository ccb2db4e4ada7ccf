package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// createTreeForTest builds
//
//    a
//    ├── b
//    │   ├── d
//    │   └── e
//    └── c
//        └── f
func createTreeForTest(t *testing.T) map[string]*Node[string] {
	nodes := make(map[string]*Node[string])
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		nodes[s] = NewNode(s)
	}
	edges := [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"b", "e"}, {"c", "f"}}
	for _, e := range edges {
		if _, err := nodes[e[0]].AddChild(nodes[e[1]]); err != nil {
			t.Fatalf("cannot build test tree: %v", err)
		}
	}
	return nodes
}

func payloads(nodes []*Node[string]) []string {
	p := make([]string, len(nodes))
	for i, n := range nodes {
		p[i] = n.Payload
	}
	return p
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNodeStructure(t *testing.T) {
	nodes := createTreeForTest(t)
	if nodes["a"].ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", nodes["a"].ChildCount())
	}
	if nodes["f"].Root() != nodes["a"] {
		t.Errorf("expected root of f to be a")
	}
	if nodes["e"].Depth() != 2 {
		t.Errorf("expected depth of e to be 2, is %d", nodes["e"].Depth())
	}
	if !nodes["b"].Contains(nodes["e"]) || nodes["b"].Contains(nodes["f"]) {
		t.Errorf("containment of b is wrong")
	}
	if !nodes["b"].Contains(nodes["b"]) {
		t.Errorf("expected node to contain itself")
	}
	if nodes["b"].IndexOfChild(nodes["e"]) != 1 {
		t.Errorf("expected e to be child #1 of b")
	}
}

func TestNodeAddChildRejectsReparenting(t *testing.T) {
	nodes := createTreeForTest(t)
	if _, err := nodes["c"].AddChild(nodes["d"]); !errors.Is(err, ErrHasParent) {
		t.Errorf("expected ErrHasParent, got %v", err)
	}
	x := NewNode("x")
	if _, err := x.AddChild(x); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}

func TestWalkerAllDescendentsInDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.tree")
	defer teardown()
	//
	nodes := createTreeForTest(t)
	future := NewWalker(nodes["a"]).AllDescendents().Promise()
	result, err := future()
	if err != nil {
		t.Fatal(err)
	}
	if got := payloads(result); !equal(got, []string{"b", "d", "e", "c", "f"}) {
		t.Errorf("expected document order b d e c f, got %v", got)
	}
}

func TestWalkerDescendentsWithLeafPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.tree")
	defer teardown()
	//
	nodes := createTreeForTest(t)
	result, err := NewWalker(nodes["a"]).DescendentsWith(NodeIsLeaf[string]()).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if got := payloads(result); !equal(got, []string{"d", "e", "f"}) {
		t.Errorf("expected leafs d e f, got %v", got)
	}
}

func TestWalkerParentAndAncestor(t *testing.T) {
	nodes := createTreeForTest(t)
	result, _ := NewWalker(nodes["f"]).Parent().Promise()()
	if got := payloads(result); !equal(got, []string{"c"}) {
		t.Errorf("expected parent of f to be c, got %v", got)
	}
	isA := func(test *Node[string], _ *Node[string]) (*Node[string], error) {
		if test.Payload == "a" {
			return test, nil
		}
		return nil, nil
	}
	result, _ = NewWalker(nodes["e"]).AncestorWith(isA).Promise()()
	if got := payloads(result); !equal(got, []string{"a"}) {
		t.Errorf("expected ancestor a, got %v", got)
	}
}

func TestWalkerTopDownVisitsParentsFirst(t *testing.T) {
	nodes := createTreeForTest(t)
	var visited []string
	action := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		if parent != nil && parent.IndexOfChild(n) != position {
			t.Errorf("position of %s is %d, expected %d", n.Payload, position, parent.IndexOfChild(n))
		}
		visited = append(visited, n.Payload)
		return n, nil
	}
	result, err := NewWalker(nodes["b"]).TopDown(action).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if !equal(visited, []string{"b", "d", "e"}) || len(result) != 3 {
		t.Errorf("expected top-down walk b d e, got %v", visited)
	}
}

func TestWalkerErrors(t *testing.T) {
	var w *Walker[string]
	if _, err := w.AllDescendents().Promise()(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree for nil walker, got %v", err)
	}
	nodes := createTreeForTest(t)
	if _, err := NewWalker(nodes["a"]).Filter(nil).Promise()(); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	walker := NewWalker(nodes["a"])
	walker.Promise()
	if _, err := walker.AllDescendents().Promise()(); !errors.Is(err, ErrNoMoreFiltersAccepted) {
		t.Errorf("expected ErrNoMoreFiltersAccepted, got %v", err)
	}
	boom := errors.New("boom")
	failing := func(n *Node[string], _ *Node[string], _ int) (*Node[string], error) {
		if n.Payload == "e" {
			return nil, boom
		}
		return n, nil
	}
	if _, err := NewWalker(nodes["a"]).TopDown(failing).Promise()(); !errors.Is(err, boom) {
		t.Errorf("expected action error to be reported, got %v", err)
	}
}
