package cssom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/querysandbox/dom"
	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/npillmayer/querysandbox/widget"
)

// ErrNoStyleSheet is returned for nil or empty stylesheets.
var ErrNoStyleSheet = errors.New("no stylesheet given")

// CSSOM is the central type for styling widget trees. Clients add one or
// more stylesheets and then call Style(…) for a tree, as often as needed.
// Styling is cheap for the small trees of the sandbox, so clients are
// expected to re-style after every change of hit markers.
type CSSOM struct {
	defaults *style.PropertyMap
	rules    []compiledRule
	sources  int // number of selectors (compiled or not) seen
}

type compiledRule struct {
	sel   cascadia.Sel
	order int // position in the stylesheets, for tie breaking
	decls []declaration
}

type declaration struct {
	key       string
	value     style.Property
	important bool
}

// NewCSSOM creates a CSSOM with default style properties. Clients may
// supply additional properties.
func NewCSSOM(additionalProps []style.KeyValue) *CSSOM {
	return &CSSOM{
		defaults: style.InitializeDefaultPropertyValues(additionalProps),
	}
}

// AddStylesForScope adds the rules of a stylesheet. Rules are matched in
// the order they are added.
//
// Selectors which cannot be parsed are skipped, as browsers do. The number
// of skipped selectors is returned, together with an error describing the
// first of them.
func (cssom *CSSOM) AddStylesForScope(sheet StyleSheet) (int, error) {
	if sheet == nil || sheet.Empty() {
		return 0, ErrNoStyleSheet
	}
	var firstErr error
	skipped := 0
	for _, rule := range sheet.Rules() {
		decls := make([]declaration, 0, len(rule.Properties()))
		for _, key := range rule.Properties() {
			decls = append(decls, declaration{
				key:       key,
				value:     rule.Value(key),
				important: rule.IsImportant(key),
			})
		}
		for _, selector := range rule.SelectorList() {
			cssom.sources++
			sel, err := cascadia.Parse(selector)
			if err != nil {
				tracer().P("selector", selector).Errorf("skipping style rule: %v", err)
				if firstErr == nil {
					firstErr = fmt.Errorf("style rule %q: %w", selector, err)
				}
				skipped++
				continue
			}
			cssom.rules = append(cssom.rules, compiledRule{
				sel:   sel,
				order: cssom.sources,
				decls: decls,
			})
		}
	}
	tracer().Debugf("CSSOM has %d compiled rules", len(cssom.rules))
	return skipped, firstErr
}

// RuleCount returns the number of compiled rules, one per selector.
func (cssom *CSSOM) RuleCount() int {
	return len(cssom.rules)
}

// Reset drops all rules, keeping the default properties.
func (cssom *CSSOM) Reset() {
	cssom.rules = nil
	cssom.sources = 0
}

// match is a declaration applicable to a widget.
type match struct {
	decl        declaration
	specificity cascadia.Specificity
	order       int
}

// Style computes the local styles of every widget in the tree rooted at
// root. The tree will be projected to a shadow DOM, if this has not yet
// been done.
func (cssom *CSSOM) Style(root *widget.Widget) (*css.Styles, error) {
	if _, err := dom.Project(root); err != nil {
		return nil, err
	}
	styles := css.NewStyles(cssom.defaults)
	root.Walk(func(w *widget.Widget) {
		var matches []match
		for _, rule := range cssom.rules {
			if !rule.sel.Match(w.Shadow()) {
				continue
			}
			for _, d := range rule.decls {
				matches = append(matches, match{
					decl:        d,
					specificity: rule.sel.Specificity(),
					order:       rule.order,
				})
			}
		}
		if len(matches) == 0 {
			return
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return applyBefore(matches[i], matches[j])
		})
		pmap := style.NewPropertyMap()
		for _, m := range matches { // later ones overwrite earlier ones
			pmap.Set(m.decl.key, m.decl.value)
		}
		styles.Set(w, pmap)
	})
	return styles, nil
}

// applyBefore is true if m1 has to be applied before m2, i.e., m2 wins
// for a common property.
func applyBefore(m1, m2 match) bool {
	if m1.decl.important != m2.decl.important {
		return !m1.decl.important
	}
	if m1.specificity != m2.specificity {
		return m1.specificity.Less(m2.specificity)
	}
	return m1.order < m2.order
}
