/*
Package cssom provides functionality for styling widget trees.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
We use it for styling the widgets of the sandbox with a small subset
of CSS, applied to a character grid.

Matching of selectors is done by https://godoc.org/github.com/andybalholm/cascadia,
operating on the shadow DOM of a widget tree (see package dom). This is
the same engine the sandbox lets users query with, so styling rules and
queries always agree about which widgets a selector denotes.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

Rules are applied in the usual order: declarations flagged as important
win over normal ones, then higher specificity wins, then later rules win
over earlier ones.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sandbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.style")
}
