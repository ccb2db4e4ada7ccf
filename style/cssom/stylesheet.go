package cssom

import "github.com/npillmayer/querysandbox/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of stylesheets from the
// styling of widget trees, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	SelectorList() []string      // the individual selectors of the prelude
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "1"
	IsImportant(string) bool     // is property key marked as important?
}
