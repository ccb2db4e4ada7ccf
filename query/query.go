package query

import (
	"github.com/npillmayer/querysandbox/dom"
	"github.com/npillmayer/querysandbox/result"
	"github.com/npillmayer/querysandbox/widget"
	"golang.org/x/net/html"
)

// Selection is a list of widgets in document order.
type Selection []*widget.Widget

// Labels returns the labels of all widgets of a selection.
func (sel Selection) Labels() []string {
	labels := make([]string, len(sel))
	for i, w := range sel {
		labels[i] = w.Label()
	}
	return labels
}

// Evaluate evaluates a selector within a scope, using a selector engine.
// If engine is nil, a CascadiaEngine is used.
//
// The result holds either the matching widgets in document order, or an
// error of type *SelectorError, *InternalError or ErrNoScope.
func Evaluate(engine Engine, scope *widget.Widget, selector string) result.Result[Selection] {
	if scope == nil {
		return result.Err[Selection](ErrNoScope)
	}
	if engine == nil {
		engine = CascadiaEngine{}
	}
	if _, err := dom.Project(scope); err != nil {
		return result.Err[Selection](err)
	}
	nodes, err := query(engine, scope.Shadow(), selector)
	if err != nil {
		tracer().P("selector", selector).Infof("query failed: %v", err)
		return result.Err[Selection](err)
	}
	lookup := dom.LookupFor(scope)
	selection := make(Selection, 0, len(nodes))
	for _, n := range nodes {
		w, ok := lookup.Widget(n)
		if !ok { // outside of scope or not a widget
			tracer().P("selector", selector).Errorf("engine returned node <%s> outside of scope %s",
				n.Data, scope)
			continue
		}
		selection = append(selection, w)
	}
	tracer().P("selector", selector).Debugf("query matched %d widgets in %s", len(selection), scope)
	return result.Ok(selection)
}

// query calls the engine, turning panics into an InternalError.
func query(engine Engine, scope *html.Node, selector string) (nodes []*html.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes, err = nil, &InternalError{Selector: selector, Cause: r}
		}
	}()
	nodes, err = engine.Query(scope, selector)
	if err != nil {
		return nil, &SelectorError{Selector: selector, Err: err}
	}
	return nodes, nil
}

// Evaluator evaluates selectors with a fixed engine.
type Evaluator struct {
	engine Engine
}

// NewEvaluator creates an evaluator for an engine. If engine is nil, a
// CascadiaEngine is used.
func NewEvaluator(engine Engine) *Evaluator {
	if engine == nil {
		engine = CascadiaEngine{}
	}
	return &Evaluator{engine: engine}
}

// Evaluate evaluates a selector within a scope. See function Evaluate.
func (ev *Evaluator) Evaluate(scope *widget.Widget, selector string) result.Result[Selection] {
	return Evaluate(ev.engine, scope, selector)
}
