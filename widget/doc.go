/*
Package widget implements the static widget trees used as query targets.

Overview

A widget tree is a hierarchy of labeled containers and leafs, built once at
startup and never changed structurally afterwards. Every widget has a type
name (used by type selectors like `Vertical`), an optional identifier
(`#id`), zero or more classes (`.class`) and a boolean hit marker, which
is set for widgets matched by the most recent query.

Widgets are built on top of the general purpose tree type of package tree.
In a fully object oriented programming language we would subclass the tree
type, but in Go we resort to composition, thus including a generic tree node
in every widget. Payload of the tree node always points back to the widget.

The root of a tree is a `Screen`, its children are `Playground`s. Each
playground is an independent query scope, shown as a tab in the sandbox.
Besides the built-in playgrounds, trees may be loaded from YAML files.

Every widget may be bound to a shadow node of package dom, which the
selector engine operates on. Widgets keep the attributes of their shadow
node in sync with their classes and hit marker.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.widget'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.widget")
}
