/*
Package css provides functionality for resolving style properties of widgets.

Style properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
style properties resulting of (1) the textual nature of CSS properties
and (2) the semantics of computing style attributes for a given widget,
including inheritance.

Resolved styles are realized as lipgloss styles (see type Box), ready for
rendering on a terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.style")
}
