package sandbox

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// DefaultBindings returns the key bindings of the sandbox.
func DefaultBindings() []Binding {
	scopeKeys := make([]string, 0, 9)
	for i := 1; i <= 9; i++ {
		scopeKeys = append(scopeKeys, fmt.Sprintf("alt+%d", i))
	}
	return []Binding{
		{Event: Event{Kind: EventSubmit}, Keys: []string{"enter"}, Help: "query", Focus: []Focus{FocusInput}},
		{Event: Event{Kind: EventPress}, Keys: []string{"enter", " "}, Help: "press", Focus: []Focus{FocusButton}},
		{Event: Event{Kind: EventToggleHelp}, Keys: []string{"?"}, Help: "more", Focus: []Focus{FocusButton, FocusResults}},
		{Event: Event{Kind: EventFocusNext}, Keys: []string{"tab"}, Help: "next field"},
		{Event: Event{Kind: EventFocusPrev}, Keys: []string{"shift+tab"}, Help: "previous field"},
		{Event: Event{Kind: EventScopeChange, Index: 1, Relative: true}, Keys: []string{"ctrl+n"}, Help: "next playground"},
		{Event: Event{Kind: EventScopeChange, Index: -1, Relative: true}, Keys: []string{"ctrl+p"}, Help: "previous playground"},
		{Event: Event{Kind: EventScopeChange, Index: -1}, Keys: scopeKeys, Help: "go to playground"},
		{Event: Event{Kind: EventToggleSnapshot}, Keys: []string{"ctrl+t"}, Help: "tree snapshot"},
		{Event: Event{Kind: EventReloadStyles}, Keys: []string{"ctrl+r"}, Help: "reload styles"},
		{Event: Event{Kind: EventToggleHelp}, Keys: []string{"f1"}, Help: "more"},
		{Event: Event{Kind: EventQuit}, Keys: []string{"ctrl+c", "esc"}, Help: "quit"},
	}
}

// defaultHandlers returns the event handlers of the sandbox.
func defaultHandlers() map[EventKind]Handler {
	return map[EventKind]Handler{
		EventSubmit:         handleQuery,
		EventPress:          handleQuery,
		EventScopeChange:    handleScopeChange,
		EventFocusNext:      handleFocus,
		EventFocusPrev:      handleFocus,
		EventToggleSnapshot: handleToggleSnapshot,
		EventToggleHelp:     handleToggleHelp,
		EventReloadStyles:   handleReloadStyles,
		EventQuit:           handleQuit,
	}
}

// DefaultRegistry creates a registry with the default bindings and
// handlers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range DefaultBindings() {
		r.Bind(b)
	}
	for kind, h := range defaultHandlers() {
		r.Handle(kind, h)
	}
	return r
}

// helpKeys adapts the registry to help.KeyMap for a given focus.
type helpKeys struct {
	registry *Registry
	focus    Focus
}

func (hk helpKeys) ShortHelp() []key.Binding {
	all := hk.registry.HelpBindings(hk.focus)
	if n := len(all); n > 5 { // keep help and quit, which come last
		return append(all[:3:3], all[n-2:]...)
	}
	return all
}

func (hk helpKeys) FullHelp() [][]key.Binding {
	all := hk.registry.HelpBindings(hk.focus)
	var cols [][]key.Binding
	for len(all) > 4 {
		cols = append(cols, all[:4])
		all = all[4:]
	}
	if len(all) > 0 {
		cols = append(cols, all)
	}
	return cols
}
