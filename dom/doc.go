/*
Package dom projects widget trees onto a shadow document object model.

Overview

Selector engines operate on HTML-like document nodes. For every widget tree
we build a parallel tree of nodes of package golang.org/x/net/html, the
shadow DOM. Every widget becomes an element node: its type name, in lower
case, is the element name; its identifier and classes are mirrored to the
attributes `id` and `class`. Labeled leafs get an additional text child,
holding their label text.

The shadow DOM is built once for a complete widget tree and never changes
structurally afterwards. The only mutable part are the class attributes,
which widgets keep in sync with their hit marker (see widget.HitClass).

Tree Implementation

Widgets are implemented on top of the general purpose tree type of package
tree. We do not link html nodes into this tree, but let widgets reference
their shadow node. Mapping back from shadow nodes to widgets is done per
(sub-)tree, with a lookup table restricted to the tree in question. That
way nodes outside a query scope can never be mapped back accidentally.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'sandbox.dom'
func tracer() tracing.Trace {
	return tracing.Select("sandbox.dom")
}
