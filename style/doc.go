/*
Package style holds style properties for widgets.

Overview

Widgets of the sandbox are styled by a subset of CSS, similar to what
terminal UI frameworks offer. A stylesheet like

    Playground * {
        border: panel red 40%;
    }
    .hit {
        border: panel green !important;
        background: green 10%;
    }

is parsed (package cssom/douceuradapter), matched against the shadow DOM of
a widget tree (package cssom) and resolved per widget (package css). This
package provides the raw material: property values, groups of properties
and maps of groups.

Properties are organized in groups (margins, padding, border, color, text,
display, dimension). Only a small set of properties is meaningful on a
character grid; others are kept as-is but not interpreted.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'sandbox.style'
func tracer() tracing.Trace {
	return tracing.Select("sandbox.style")
}
