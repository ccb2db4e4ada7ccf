package query

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Engine is a selector engine. Query returns all nodes below scope
// (excluding scope) matching selector, in document order.
type Engine interface {
	Query(scope *html.Node, selector string) ([]*html.Node, error)
}

// CascadiaEngine is an Engine backed by cascadia.
type CascadiaEngine struct{}

// Query is part of interface Engine. Selector groups ("#a, .b") are
// supported.
func (CascadiaEngine) Query(scope *html.Node, selector string) ([]*html.Node, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(scope, group), nil
}

var _ Engine = CascadiaEngine{}
