// internal/app/view.go
package app

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/halftone/internal/ui/statusbar"
)

// View renders the full frame: panes, status bar, popup overlays and
// the graphics protocol escapes.
func (m Model) View() string {
	// Nothing sensible to draw before the first WindowSizeMsg
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.Viewer.View()
	if m.BrowserVisible {
		view = lipgloss.JoinHorizontal(lipgloss.Top, m.Browser.View(), view)
	}
	view += "\n" + statusbar.Render(m.statusState(), m.Width)

	view = m.Popups.RenderOverlay(view)
	view = enforceHeight(view, m.Height)

	// Transmission goes in front so the terminal knows the image before
	// the placement escape at the end references it.
	if m.pendingTransmit != "" {
		view = m.pendingTransmit + view
	}
	return view + m.imagePlacement()
}

// imagePlacement returns the placement escape for the current frame.
// While a popup is open the placement is removed instead, so the
// image does not draw over it. The transmitted data stays on the
// terminal, closing the popup re-places it without a retransmit.
func (m Model) imagePlacement() string {
	if m.Popups.ActivePopup() != PopupNone {
		return m.Viewer.HidePlacementCmd()
	}

	// Viewer interior starts one row below its top border, one column
	// after the browser pane plus the left border.
	return m.Viewer.PlacementCmd(2, m.browserWidth+2)
}

func (m Model) statusState() statusbar.State {
	images := m.Browser.Images()
	path := m.Viewer.Path()
	index := 0
	if i := slices.Index(images, path); i >= 0 {
		index = i + 1
	}

	return statusbar.State{
		Path:     path,
		Width:    m.current.Width,
		Height:   m.current.Height,
		Format:   m.current.Format,
		FileSize: m.current.Size,
		Index:    index,
		Total:    len(images),
		Upscale:  m.Viewer.Upscale(),
		Frame:    m.Viewer.Frame(),
		Filter:   m.Viewer.FilterName(),
		Protocol: m.Viewer.Protocol().String(),
		Message:  m.statusMessage,
	}
}

// enforceHeight pads or cuts the view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := splitLines(view)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// splitLines splits on newlines, dropping the empty entry a trailing
// newline would produce.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines) - 1; n >= 0 && lines[n] == "" {
		lines = lines[:n]
	}
	return lines
}
