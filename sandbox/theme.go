package sandbox

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/querysandbox/style/css"
)

var (
	accent = lipgloss.Color("#6495ed") // cornflowerblue
	faint  = lipgloss.Color("#808080")
	danger = lipgloss.Color("#ff5f5f")

	tabStyle           = lipgloss.NewStyle().Foreground(faint)
	activeTabStyle     = lipgloss.NewStyle().Foreground(accent).Reverse(true).Bold(true)
	buttonStyle        = lipgloss.NewStyle().Foreground(accent).Reverse(true)
	focusedButtonStyle = buttonStyle.Bold(true).Underline(true)
	statusStyle        = lipgloss.NewStyle().Foreground(faint)
	errorStyle         = lipgloss.NewStyle().Foreground(danger)

	resultsFrame = lipgloss.NewStyle().
			Border(css.BorderFor("panel")).
			Padding(0, 1).
			MarginTop(1)
)

// resultsBox is the titled box around the results pane.
func resultsBox(focused bool) css.Box {
	color := faint
	if focused {
		color = accent
	}
	return css.Box{
		BorderStyle: "panel",
		Inner:       resultsFrame.UnsetMargins().BorderForeground(color),
		Margins:     lipgloss.NewStyle().MarginTop(1),
		Title:       lipgloss.NewStyle().Foreground(color).Reverse(true),
	}
}
