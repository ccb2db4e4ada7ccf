/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload of type
parameter T and an ordered list of children. Widget trees of the
query sandbox are built on top of it.

Walkers

We support a set of search & filter functions on tree nodes. Clients will chain
these to perform tasks on nodes (see examples below).
You may think of the set of operations to form a small
Domain Specific Language (DSL). This is similar in concept to JQuery, but
of course with a much smaller set of functions.

Navigation functions:

   Parent()                     // find parent for all selected nodes
   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendents with a given predicate
   AllDescendents()             // every descendent, in document order
   TopDown(action)              // traverse all nodes top down (depth first, pre-order)

Filter functions:

   Filter(userfunc)             // apply a user-provided filter function

Walkers operate on the calling goroutine. The sandbox runs a single
cooperative event loop, and every walk completes before the next event
is dispatched. Results are still handed out as a promise, which keeps
the client-side DSL unchanged should walks become asynchronous again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.tree'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.tree")
}
