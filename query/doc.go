/*
Package query evaluates selectors against widget trees.

Overview

Selector parsing and matching is delegated to an external engine, operating
on the shadow DOM of a widget tree (see package dom). The default engine is
cascadia (https://godoc.org/github.com/andybalholm/cascadia), which
understands the usual CSS selector syntax:

    Playground *           descendents of the playground
    #innermost             widget with id "innermost"
    .foo                   widgets with class "foo"
    Horizontal > Vertical  children of horizontal containers

Evaluation returns a result.Result: either the selected widgets in document
order, or an error. Errors reported by the engine are passed through as
*SelectorError without changing their message; an engine failing with a
panic results in an *InternalError.

Evaluation never changes a widget tree, neither structurally nor by setting
hit markers. The matched widgets are always part of the scope the query was
evaluated in: the scope itself or one of its descendents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.query'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.query")
}
