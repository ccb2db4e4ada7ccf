package sandbox

import (
	"errors"
	"fmt"

	"github.com/npillmayer/querysandbox/highlight"
	"github.com/npillmayer/querysandbox/maybe"
	"github.com/npillmayer/querysandbox/query"
	"github.com/npillmayer/querysandbox/report"
	"github.com/npillmayer/querysandbox/widget"
)

// ErrNoPlaygrounds is returned for a screen without playgrounds.
var ErrNoPlaygrounds = errors.New("screen has no playgrounds")

// State is the state of the query loop.
type State int8

// States of the query loop.
const (
	Idle State = iota
	Evaluating
)

func (s State) String() string {
	if s == Evaluating {
		return "Evaluating"
	}
	return "Idle"
}

// Controller runs the query loop for a screen of playgrounds. Exactly one
// playground is the active scope at any time.
type Controller struct {
	screen    *widget.Widget
	scopes    []*widget.Widget
	active    int
	evaluator *query.Evaluator
	last      maybe.Maybe[string] // last submitted selector
	state     State
	report    report.Report
	hasReport bool
}

// NewController creates a controller for a screen. engine may be nil, in
// which case selectors are evaluated by cascadia.
func NewController(screen *widget.Widget, engine query.Engine) (*Controller, error) {
	scopes := widget.Playgrounds(screen)
	if len(scopes) == 0 {
		return nil, ErrNoPlaygrounds
	}
	return &Controller{
		screen:    screen,
		scopes:    scopes,
		evaluator: query.NewEvaluator(engine),
		last:      maybe.Nothing[string](),
	}, nil
}

// Screen returns the root of the widget tree.
func (c *Controller) Screen() *widget.Widget {
	return c.screen
}

// Scopes returns the playgrounds of the screen.
func (c *Controller) Scopes() []*widget.Widget {
	return c.scopes
}

// Active returns the index of the active scope.
func (c *Controller) Active() int {
	return c.active
}

// Scope returns the active scope.
func (c *Controller) Scope() *widget.Widget {
	return c.scopes[c.active]
}

// State returns the state of the query loop.
func (c *Controller) State() State {
	return c.state
}

// LastSelector returns the last submitted selector, if any.
func (c *Controller) LastSelector() maybe.Maybe[string] {
	return c.last
}

// Report returns the report of the most recent query. The boolean result
// is false if no query has been run yet.
func (c *Controller) Report() (report.Report, bool) {
	return c.report, c.hasReport
}

// Submit remembers a selector as the last submitted one and runs it against
// the active scope.
func (c *Controller) Submit(selector string) report.Report {
	c.last = maybe.Just(selector)
	return c.run(selector)
}

// run executes the query loop: clear, evaluate, mark, render.
func (c *Controller) run(selector string) report.Report {
	if c.state == Evaluating {
		panic(fmt.Sprintf("query loop re-entered with selector %q", selector))
	}
	c.state = Evaluating
	defer func() { c.state = Idle }()
	//
	scope := c.Scope()
	n := highlight.Clear(scope)
	tracer().P("scope", scope.Name()).Debugf("cleared %d hit markers, evaluating %q", n, selector)
	res := c.evaluator.Evaluate(scope, selector)
	if sel, err := res.Get(); err == nil {
		highlight.Mark(sel)
	} else {
		tracer().P("selector", selector).Infof("query failed: %v", err)
	}
	c.report = report.Render(scope, res)
	c.hasReport = true
	return c.report
}

// SwitchScope activates the scope at index i. Hit markers of the previously
// active scope are cleared. If a selector has been submitted before, it is
// re-run against the new scope and its report is returned together with
// true.
func (c *Controller) SwitchScope(i int) (report.Report, bool) {
	if i < 0 || i >= len(c.scopes) {
		tracer().Debugf("ignoring switch to non-existent scope %d", i)
		return c.report, false
	}
	if i == c.active {
		return c.report, false
	}
	highlight.Clear(c.Scope())
	c.active = i
	tracer().Infof("active scope is now %s", c.Scope().Name())
	c.hasReport = false
	var rep report.Report
	var selector string
	rerun := false
	switch m := c.last.Match(); m {
	case m.Just(&selector):
		rep, rerun = c.run(selector), true
	case m.Nothing():
		c.report = report.Report{}
	}
	return rep, rerun
}

// CycleScope activates the scope delta positions away from the active
// one, wrapping around.
func (c *Controller) CycleScope(delta int) (report.Report, bool) {
	n := len(c.scopes)
	return c.SwitchScope(((c.active+delta)%n + n) % n)
}

// ScopeIndex returns the index of the scope with a given name, or -1.
func (c *Controller) ScopeIndex(name string) int {
	for i, s := range c.scopes {
		if s.Name() == name {
			return i
		}
	}
	return -1
}
