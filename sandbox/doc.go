/*
Package sandbox implements the interactive query sandbox.

The sandbox shows one or more playgrounds (widget trees) in tabs, together
with an input field for CSS selectors. Submitting a selector runs the query
loop for the active playground:

    clear hit markers → evaluate selector → mark hits → render report

Every trigger runs this loop to completion within a single call of the
bubbletea update function, thus there is no overlap between queries.
Switching the active playground re-runs the last submitted selector against
the new playground.

Type Controller implements the query loop independently of any terminal
UI; type Model is the bubbletea front end. Key events are mapped to sandbox
events by a Registry, which is set up once at start-up and dispatches
events to their handlers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sandbox

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sandbox.ui'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.ui")
}
