package sandbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	r := DefaultRegistry()
	b := r.Lookup("enter", FocusInput)
	require.NotNil(t, b)
	assert.Equal(t, EventSubmit, b.Event.Kind)
	b = r.Lookup("enter", FocusButton)
	require.NotNil(t, b)
	assert.Equal(t, EventPress, b.Event.Kind)
	assert.Nil(t, r.Lookup("enter", FocusResults))
	assert.Nil(t, r.Lookup(" ", FocusInput), "space is typed into the input")
	b = r.Lookup(" ", FocusButton)
	require.NotNil(t, b)
	assert.Equal(t, EventPress, b.Event.Kind)
	b = r.Lookup("CTRL+N", FocusResults) // global, case insensitive
	require.NotNil(t, b)
	assert.Equal(t, EventScopeChange, b.Event.Kind)
	assert.True(t, b.Event.Relative)
	assert.Nil(t, r.Lookup("?", FocusInput))
}

func TestRegistryFirstBindingWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	r := NewRegistry()
	r.Bind(Binding{Event: Event{Kind: EventQuit}, Keys: []string{"q"}, Help: "quit"})
	r.Bind(Binding{Event: Event{Kind: EventToggleHelp}, Keys: []string{"q", "h"}, Help: "help"})
	assert.Equal(t, EventQuit, r.Lookup("q", FocusInput).Event.Kind)
	assert.Equal(t, EventToggleHelp, r.Lookup("h", FocusInput).Event.Kind)
	assert.Len(t, r.HelpBindings(FocusInput), 2)
}

func TestRegistryDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	r := NewRegistry()
	var got []Event
	r.Handle(EventPress, func(m *Model, ev Event) tea.Cmd {
		got = append(got, ev)
		return nil
	})
	r.Dispatch(nil, Event{Kind: EventPress, Key: "x"})
	r.Dispatch(nil, Event{Kind: EventSubmit}) // no handler
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Key)
	assert.Equal(t, "press", EventPress.String())
	assert.Equal(t, "button", FocusButton.String())
}

func TestHelpKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.ui")
	defer teardown()
	//
	hk := helpKeys{registry: DefaultRegistry(), focus: FocusInput}
	short := hk.ShortHelp()
	require.Len(t, short, 5)
	assert.Equal(t, "query", short[0].Help().Desc)
	assert.Equal(t, "quit", short[4].Help().Desc)
	n := 0
	for _, col := range hk.FullHelp() {
		assert.LessOrEqual(t, len(col), 4)
		n += len(col)
	}
	assert.Equal(t, len(hk.registry.HelpBindings(FocusInput)), n)
	assert.Equal(t, "alt+1…alt+9", keyLabel(DefaultBindings()[7].Keys))
}
