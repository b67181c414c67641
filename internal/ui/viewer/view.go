package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/halftone/internal/ui"
	"github.com/llehouerou/halftone/internal/ui/render"
	"github.com/llehouerou/halftone/internal/ui/styles"
)

// View renders the pane with its border. The interior comes from the
// memoized canvas render; without an image a hint is shown instead.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	innerHeight := m.Height() - ui.BorderHeight

	content := m.rendered
	if content == "" {
		content = renderEmpty(innerWidth, innerHeight)
	}

	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(content)
}

// renderEmpty renders the no-image state.
func renderEmpty(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)

	for i := 0; i < height/2; i++ {
		lines = append(lines, render.EmptyLine(width))
	}

	msg := styles.T().S().Muted.Render("no image selected")
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(msg)
	lines = append(lines, centered)

	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}

	return strings.Join(lines, "\n")
}
