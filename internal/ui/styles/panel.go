package styles

import "github.com/charmbracelet/lipgloss"

var panelBorders = map[bool]lipgloss.Style{
	false: lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(defaultTheme.Border),
	true: lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(defaultTheme.BorderFocus),
}

// PanelStyle returns the pane border style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	return panelBorders[focused]
}
