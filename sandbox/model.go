package sandbox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/querysandbox/report"
	"github.com/npillmayer/querysandbox/style/css"
)

// Model is the bubbletea model of the sandbox.
type Model struct {
	ctl      *Controller
	styler   *Styler
	registry *Registry
	input    textinput.Model
	results  viewport.Model
	help     help.Model
	focus    Focus
	snapshot bool   // show the tree snapshot below the results
	status   string // last status message, e.g. stylesheet errors
	width    int
	height   int
	// rendered parts, updated by refresh
	tabs       string
	tabZones   []zone
	playground string
}

// zone is a horizontal range of cells on the tab bar.
type zone struct {
	from, to int // [from, to)
	scope    int
}

const (
	buttonLabel  = " Query "
	resultsTitle = "Query Results"
	inputRow     = 1 // screen row of the input field and the button
	minResults   = 3 // minimum height of the results viewport
)

// New creates a sandbox model. The input field is pre-filled with
// selector. If registry is nil, the default registry is used.
func New(ctl *Controller, styler *Styler, registry *Registry, selector string) *Model {
	if registry == nil {
		registry = DefaultRegistry()
	}
	in := textinput.New()
	in.Prompt = "❯ "
	in.Placeholder = "CSS selector"
	in.SetValue(selector)
	in.Focus()
	m := &Model{
		ctl:      ctl,
		styler:   styler,
		registry: registry,
		input:    in,
		results:  viewport.New(80, minResults),
		help:     help.New(),
		focus:    FocusInput,
	}
	m.refresh()
	return m
}

// Controller returns the controller running the query loop.
func (m *Model) Controller() *Controller {
	return m.ctl
}

// Focus returns the component holding the keyboard focus.
func (m *Model) Focus() Focus {
	return m.focus
}

// Input returns the current text of the input field.
func (m *Model) Input() string {
	return m.input.Value()
}

// SetInput replaces the text of the input field.
func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
}

// Status returns the last status message.
func (m *Model) Status() string {
	return m.status
}

// ShowsSnapshot is true if the tree snapshot is displayed.
func (m *Model) ShowsSnapshot() bool {
	return m.snapshot
}

// Init is part of interface tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is part of interface tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if b := m.registry.Lookup(k, m.focus); b != nil {
			ev := b.Event
			ev.Key = k
			return m, m.registry.Dispatch(m, ev)
		}
		return m, m.forward(msg)
	case tea.MouseMsg:
		return m, m.mouse(msg)
	case StylesheetChangedMsg:
		return m, m.registry.Dispatch(m, Event{Kind: EventReloadStyles})
	case StylesheetWatchErrMsg:
		m.status = fmt.Sprintf("stylesheet watcher stopped: %v", msg.Err)
		tracer().Errorf("%s", m.status)
		return m, nil
	}
	return m, m.forward(msg)
}

// forward passes a message on to the focused component.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusInput:
		m.input, cmd = m.input.Update(msg)
	case FocusResults:
		m.results, cmd = m.results.Update(msg)
	}
	return cmd
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			for _, z := range m.tabZones {
				if msg.X >= z.from && msg.X < z.to {
					return m.registry.Dispatch(m, Event{Kind: EventScopeChange, Index: z.scope})
				}
			}
			return nil
		}
		if msg.Y == inputRow {
			from := lipgloss.Width(m.inputView()) + 1
			if msg.X >= from && msg.X < from+lipgloss.Width(buttonLabel) {
				return m.registry.Dispatch(m, Event{Kind: EventPress})
			}
		}
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return cmd
	}
	return nil
}

// --- Event handlers --------------------------------------------------------

// handleQuery runs the query loop for the text of the input field. The
// input field gets the focus.
func handleQuery(m *Model, ev Event) tea.Cmd {
	m.ctl.Submit(m.input.Value())
	m.showReport()
	return m.setFocus(FocusInput)
}

// handleScopeChange activates another playground. The last query is
// re-run, without changing the focus.
func handleScopeChange(m *Model, ev Event) tea.Cmd {
	var rerun bool
	switch {
	case ev.Relative:
		_, rerun = m.ctl.CycleScope(ev.Index)
	case ev.Index < 0:
		if ev.Key == "" {
			return nil
		}
		n, err := strconv.Atoi(ev.Key[len(ev.Key)-1:])
		if err != nil || n < 1 {
			return nil
		}
		_, rerun = m.ctl.SwitchScope(n - 1)
	default:
		_, rerun = m.ctl.SwitchScope(ev.Index)
	}
	if rerun {
		m.showReport()
	} else {
		m.refresh()
	}
	return nil
}

func handleFocus(m *Model, ev Event) tea.Cmd {
	f := m.focus + 1
	if ev.Kind == EventFocusPrev {
		f = m.focus + focusCount - 1
	}
	return m.setFocus(f % focusCount)
}

func handleToggleSnapshot(m *Model, ev Event) tea.Cmd {
	m.snapshot = !m.snapshot
	m.refresh()
	return nil
}

func handleToggleHelp(m *Model, ev Event) tea.Cmd {
	m.help.ShowAll = !m.help.ShowAll
	m.refresh()
	return nil
}

func handleReloadStyles(m *Model, ev Event) tea.Cmd {
	if err := m.styler.Reload(); err != nil {
		m.status = fmt.Sprintf("stylesheet not reloaded: %v", err)
		tracer().Errorf("%s", m.status)
	} else {
		m.status = "stylesheet reloaded"
	}
	m.refresh()
	return nil
}

func handleQuit(m *Model, ev Event) tea.Cmd {
	return tea.Quit
}

// --- Helpers ---------------------------------------------------------------

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) showReport() {
	m.status = ""
	m.refresh()
	m.results.GotoTop()
}

// resultsText is the content of the results pane.
func (m *Model) resultsText() string {
	rep, ok := m.ctl.Report()
	if !ok { // nothing queried yet in this scope
		rep = report.Report{Snapshot: report.Snapshot(m.ctl.Scope())}
	}
	text := rep.String()
	if rep.IsError() {
		text = errorStyle.Render(text)
	}
	if m.snapshot {
		text += "\n\n" + strings.TrimRight(rep.Snapshot, "\n")
	}
	return text
}

// refresh re-renders the tabs and the active playground and lays out the
// results viewport.
func (m *Model) refresh() {
	m.tabs, m.tabZones = m.renderTabs()
	m.playground = m.renderPlayground()
	w := m.width
	if w <= 0 {
		w = lipgloss.Width(m.playground)
	}
	m.input.Width = w - lipgloss.Width(m.input.Prompt) - lipgloss.Width(buttonLabel) - 2
	if m.input.Width < 10 {
		m.input.Width = 10
	}
	m.results.Width = w - resultsFrame.GetHorizontalFrameSize()
	if m.results.Width < 1 {
		m.results.Width = 1
	}
	used := lipgloss.Height(m.tabs) + 1 + lipgloss.Height(m.playground) +
		resultsFrame.GetVerticalFrameSize() + 2 // status and help
	h := m.height - used
	if h < minResults {
		h = minResults
	}
	m.results.Height = h
	m.results.SetContent(m.resultsText())
}

func (m *Model) renderPlayground() string {
	styles, err := m.styler.Style(m.ctl.Screen())
	if err != nil {
		m.status = fmt.Sprintf("cannot style playground: %v", err)
		tracer().Errorf("%s", m.status)
		styles = css.NewStyles(nil)
	}
	return RenderTree(m.ctl.Scope(), styles, m.width)
}

func (m *Model) renderTabs() (string, []zone) {
	var b strings.Builder
	var zones []zone
	x := 0
	for i, scope := range m.ctl.Scopes() {
		label := fmt.Sprintf(" %d %s ", i+1, scope.Name())
		st := tabStyle
		if i == m.ctl.Active() {
			st = activeTabStyle
		}
		tab := st.Render(label)
		w := lipgloss.Width(tab)
		zones = append(zones, zone{from: x, to: x + w, scope: i})
		b.WriteString(tab)
		b.WriteString(" ")
		x += w + 1
	}
	return b.String(), zones
}

func (m *Model) inputView() string {
	return m.input.View()
}

func (m *Model) buttonView() string {
	if m.focus == FocusButton {
		return focusedButtonStyle.Render(buttonLabel)
	}
	return buttonStyle.Render(buttonLabel)
}

// View is part of interface tea.Model.
func (m *Model) View() string {
	input := lipgloss.JoinHorizontal(lipgloss.Top, m.inputView(), " ", m.buttonView())
	results := resultsBox(m.focus == FocusResults).Render(m.results.View(), resultsTitle)
	status := m.ctl.Scope().Name()
	if rep, ok := m.ctl.Report(); ok {
		status += " · " + rep.Summary()
	}
	if m.status != "" {
		status += " · " + m.status
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabs,
		input,
		m.playground,
		results,
		statusStyle.Render(status),
		m.help.View(helpKeys{registry: m.registry, focus: m.focus}),
	)
}

var _ tea.Model = &Model{}
