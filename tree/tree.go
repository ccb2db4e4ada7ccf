package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is thrown if a pipeline filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is thrown if a client already called Promise(), but tried to
// re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// ErrHasParent is returned when a node which is already part of a tree
// is added as a child to another node.
var ErrHasParent = errors.New("node is already attached to a parent")

// ErrCycle is returned when adding a child would create a cycle.
var ErrCycle = errors.New("adding child would create a cycle")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the first error occured.
// Often these fields are accessed through a
// Promise-object, which represents future values for the two fields.
//
// A typical usage of a Walker looks like this ("FindNodesAndDoSomething()" is
// a placeholder for a sequence of function calls, see below):
//
//    w := NewWalker(node)
//    futureResult := w.FindNodesAndDoSomething(...).Promise()
//    nodes, err := futureResult()
//
// Walker support a set of search & filter functions. Clients will chain
// some of these to perform tasks on tree nodes (see examples).
//
// Once an error has occured, subsequent filters are skipped and the error
// is reported by the promise.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection, input for the next filter
	err       error      // first error occured
	promising bool       // client has called Promise()
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial, selection: []*Node[T]{initial}}
}

// apply runs a filter step over the current selection. f is called for every
// selected node and returns the nodes to be forwarded to the next step.
func (w *Walker[T]) apply(f func(*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w.err != nil {
		return w
	}
	if w.promising {
		w.err = ErrNoMoreFiltersAccepted
		return w
	}
	var next []*Node[T]
	for _, n := range w.selection {
		out, err := f(n)
		if err != nil {
			w.err = err
			tracer().Errorf("tree walker: %v", err)
			break
		}
		next = append(next, out...)
	}
	w.selection = next
	return w
}

// Promise is a future synchronisation point.
// Clients will call the Promise (which is of function type) to receive
// a slice of nodes and a possible error value.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.promising = true // will block calls to establish new filters
	selection, err := w.selection, w.err
	return func() ([]*Node[T], error) {
		return selection, err
	}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent returns the parent node.
// If a selected node is the tree root node, it will not produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	return w.apply(func(node *Node[T]) ([]*Node[T], error) {
		if p := node.Parent(); p != nil {
			return []*Node[T]{p}, nil
		}
		return nil, nil
	})
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T]) ([]*Node[T], error) {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			matchedNode, err := predicate(anc, node)
			if err != nil {
				return nil, err
			}
			if matchedNode != nil {
				return []*Node[T]{matchedNode}, nil
			}
		}
		return nil, nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node. Matches are collected in
// document order (pre-order, children left to right).
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T]) ([]*Node[T], error) {
		var matches []*Node[T]
		var err error
		var descend func(n *Node[T])
		descend = func(n *Node[T]) {
			for _, ch := range n.Children() {
				if err != nil {
					return
				}
				var m *Node[T]
				if m, err = predicate(ch, node); err != nil {
					return // do not descend further
				}
				if m != nil {
					matches = append(matches, m)
				}
				descend(ch)
			}
		}
		descend(node)
		return matches, err
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T]) ([]*Node[T], error) {
		n, err := f(node, node)
		if err != nil || n == nil {
			return nil, err
		}
		return []*Node[T]{n}, nil
	})
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be pushed to the next pipeline stage, if
// no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) the selected nodes.
// The traversal guarantees that parents are always processed before
// their children.
//
// If the action function returns an error for a node, the walk stops
// and the error is reported by the promise.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		var visit func(n, parent *Node[T], position int) error
		visit = func(n, parent *Node[T], position int) error {
			result, err := action(n, parent, position)
			if err != nil {
				return err
			}
			if result != nil {
				results = append(results, result)
			}
			for i, ch := range n.Children() {
				if err := visit(ch, n, i); err != nil {
					return err
				}
			}
			return nil
		}
		position := 0
		if p := node.Parent(); p != nil {
			position = p.IndexOfChild(node)
		}
		err := visit(node, node.Parent(), position)
		return results, err
	})
}
