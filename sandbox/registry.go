package sandbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// EventKind is the kind of a sandbox event.
type EventKind int

// Kinds of events the sandbox reacts to.
const (
	EventNone           EventKind = iota
	EventSubmit                   // input submitted
	EventPress                    // query button pressed
	EventScopeChange              // another playground activated
	EventFocusNext                // focus moves forward
	EventFocusPrev                // focus moves backward
	EventToggleSnapshot           // show/hide the structural snapshot
	EventToggleHelp               // show/hide full help
	EventReloadStyles             // stylesheet changed on disk
	EventQuit
)

var eventNames = map[EventKind]string{
	EventNone:           "none",
	EventSubmit:         "submit",
	EventPress:          "press",
	EventScopeChange:    "scope-change",
	EventFocusNext:      "focus-next",
	EventFocusPrev:      "focus-prev",
	EventToggleSnapshot: "toggle-snapshot",
	EventToggleHelp:     "toggle-help",
	EventReloadStyles:   "reload-styles",
	EventQuit:           "quit",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a sandbox event. Scope change events carry the index of the
// target scope, or an offset to the active scope if Relative is set. An
// index of -1 denotes the scope numbered by the last digit of Key.
type Event struct {
	Kind     EventKind
	Index    int
	Relative bool
	Key      string // key which triggered the event, if any
}

// Focus denotes the component holding the keyboard focus.
type Focus int

// Focusable components, in focus order.
const (
	FocusInput Focus = iota
	FocusButton
	FocusResults
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusButton:
		return "button"
	case FocusResults:
		return "results"
	}
	return "unknown"
}

// Handler handles an event for a model and returns an optional command.
type Handler func(m *Model, ev Event) tea.Cmd

// Binding binds keys to an event. A binding without focus entries is
// global, i.e., active regardless of the focus.
type Binding struct {
	Event Event
	Keys  []string
	Help  string
	Focus []Focus
}

const global Focus = -1

// Registry maps keys to events and events to handlers. It is set up once,
// when a model is created.
type Registry struct {
	handlers map[EventKind]Handler
	bindings map[Focus][]*Binding
	index    map[Focus]map[string]*Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[EventKind]Handler),
		bindings: make(map[Focus][]*Binding),
		index:    make(map[Focus]map[string]*Binding),
	}
}

// Handle registers the handler for an event kind, replacing any previous
// handler.
func (r *Registry) Handle(kind EventKind, h Handler) {
	r.handlers[kind] = h
}

// Bind registers a key binding. Keys already bound for a focus are not
// re-bound; the first registration wins.
func (r *Registry) Bind(b Binding) {
	scopes := b.Focus
	if len(scopes) == 0 {
		scopes = []Focus{global}
	}
	for _, f := range scopes {
		if r.index[f] == nil {
			r.index[f] = make(map[string]*Binding)
		}
		bb := b
		bb.Focus = []Focus{f}
		bb.Keys = nil
		for _, k := range b.Keys {
			if k = normalizeKey(k); k == "" {
				continue
			}
			if _, taken := r.index[f][k]; taken {
				tracer().Errorf("key %q already bound for focus %s", k, f)
				continue
			}
			bb.Keys = append(bb.Keys, k)
		}
		if len(bb.Keys) == 0 {
			continue
		}
		r.bindings[f] = append(r.bindings[f], &bb)
		for _, k := range bb.Keys {
			r.index[f][k] = &bb
		}
	}
}

// Lookup finds the binding for a key with a given focus. Focus-specific
// bindings take precedence over global ones.
func (r *Registry) Lookup(keyName string, f Focus) *Binding {
	keyName = normalizeKey(keyName)
	if b, ok := r.index[f][keyName]; ok {
		return b
	}
	if b, ok := r.index[global][keyName]; ok {
		return b
	}
	return nil
}

// Dispatch calls the handler for an event. Events without a handler are
// ignored.
func (r *Registry) Dispatch(m *Model, ev Event) tea.Cmd {
	h, ok := r.handlers[ev.Kind]
	if !ok {
		tracer().Debugf("no handler for event %s", ev.Kind)
		return nil
	}
	tracer().Debugf("dispatching event %s", ev.Kind)
	return h(m, ev)
}

// HelpBindings returns the bindings active for a focus, as key bindings
// for the help view. Global bindings come last.
func (r *Registry) HelpBindings(f Focus) []key.Binding {
	var kb []key.Binding
	add := func(bs []*Binding) {
		for _, b := range bs {
			if b.Help == "" {
				continue
			}
			kb = append(kb, key.NewBinding(
				key.WithKeys(b.Keys...),
				key.WithHelp(keyLabel(b.Keys), b.Help),
			))
		}
	}
	add(r.bindings[f])
	add(r.bindings[global])
	return kb
}

// normalizeKey lower-cases a key name. The space key is kept as " ".
func normalizeKey(k string) string {
	if k == " " || k == "space" {
		return " "
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	if len(labels) > 3 {
		return labels[0] + "…" + labels[len(labels)-1]
	}
	return strings.Join(labels, "/")
}
