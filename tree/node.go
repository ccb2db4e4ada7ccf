package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain a slice of children. Nodes are never removed once attached;
sandbox trees are built once at startup and live for the whole session.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// A node which already has a parent will not be re-parented; AddChild
// returns ErrHasParent in that case.
func (node *Node[T]) AddChild(ch *Node[T]) (*Node[T], error) {
	if ch == nil {
		return node, nil
	}
	if ch.parent != nil {
		return node, ErrHasParent
	}
	if ch == node || ch.IsAncestorOf(node) {
		return node, ErrCycle
	}
	node.children.addChild(ch, node)
	return node, nil
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Root returns the topmost ancestor of node, which may be node itself.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of node. The root has depth 0.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsAncestorOf is a predicate: is node a (proper) ancestor of other?
func (node *Node[T]) IsAncestorOf(other *Node[T]) bool {
	if node == nil || other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == node {
			return true
		}
	}
	return false
}

// Contains is a predicate: is other equal to node or one of its descendents?
func (node *Node[T]) Contains(other *Node[T]) bool {
	return node != nil && (node == other || node.IsAncestorOf(other))
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.children.length() <= n {
		return nil, false
	}
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if node.ChildCount() > 0 {
		children := node.Children()
		for i, child := range children {
			if ch == child {
				return i
			}
		}
	}
	return -1
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) addChild(child *Node[T], parent *Node[T]) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
