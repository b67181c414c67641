// internal/app/layout.go
package app

import (
	"github.com/llehouerou/halftone/internal/ui"
	"github.com/llehouerou/halftone/internal/ui/statusbar"
)

// ContentHeight returns the available height for the panes above the
// status bar.
func (m *Model) ContentHeight() int {
	return max(m.Height-statusbar.Height, 0)
}

// browserPaneWidth returns the browser pane width for a given window
// width. The pane takes a quarter of the window within fixed bounds,
// and never more than the window itself.
func browserPaneWidth(width int) int {
	w := max(ui.MinBrowserWidth, min(width/ui.BrowserWidthDivisor, ui.MaxBrowserWidth))
	return min(w, width)
}

// ResizeComponents distributes the window between the panes, the
// status bar and any active popup.
func (m *Model) ResizeComponents() {
	contentHeight := m.ContentHeight()

	m.browserWidth = 0
	if m.BrowserVisible {
		m.browserWidth = browserPaneWidth(m.Width)
		m.Browser.SetSize(m.browserWidth, contentHeight)
	}
	m.Viewer.SetSize(max(m.Width-m.browserWidth, 0), contentHeight)
	m.Popups.SetSize(m.Width, m.Height)
}
