// internal/app/keys.go
package app

import (
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/keymap"
)

// handleGlobalAction handles actions that apply regardless of focus.
func (m *Model) handleGlobalAction(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		return true, tea.Quit
	case keymap.ActionSwitchFocus:
		m.toggleFocus()
		return true, nil
	case keymap.ActionToggleBrowser:
		m.toggleBrowser()
		return true, nil
	case keymap.ActionHelp:
		m.Popups.ShowHelp([]string{"global", "browser", "viewer"})
		return true, nil
	}
	return false, nil
}

// handleViewerAction handles display actions. They work from either
// pane so options can be adjusted without leaving the browser.
func (m *Model) handleViewerAction(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionToggleUpscale:
		m.Viewer.ToggleUpscale()
		m.SaveViewerSettings()
		return true, nil
	case keymap.ActionCycleFilter:
		m.Viewer.CycleFilter()
		m.SaveViewerSettings()
		return true, nil
	case keymap.ActionToggleFrame:
		m.Viewer.ToggleFrame()
		m.SaveViewerSettings()
		return true, nil
	case keymap.ActionToggleProtocol:
		// Not persisted: the protocol re-detects per terminal on startup.
		m.Viewer.ToggleProtocol()
		return true, nil
	case keymap.ActionNextImage:
		return true, m.stepImage(1)
	case keymap.ActionPrevImage:
		return true, m.stepImage(-1)
	case keymap.ActionReload:
		if path := m.Viewer.Path(); path != "" {
			m.pendingLoad = path
			m.statusMessage = "reloaded"
			return true, loadImageCmd(path)
		}
		return true, nil
	}
	return false, nil
}

// stepImage moves to the next or previous image of the current folder,
// wrapping around at the ends.
func (m *Model) stepImage(delta int) tea.Cmd {
	images := m.Browser.Images()
	if len(images) == 0 {
		return nil
	}

	next := ""
	idx := slices.Index(images, m.Viewer.Path())
	switch {
	case idx >= 0:
		next = images[(idx+delta+len(images))%len(images)]
	case delta < 0:
		next = images[len(images)-1]
	default:
		next = images[0]
	}
	if next == m.Viewer.Path() {
		return nil
	}

	m.Browser.SelectByName(filepath.Base(next))
	m.pendingLoad = next
	return loadImageCmd(next)
}

func (m *Model) toggleFocus() {
	if !m.BrowserVisible {
		return
	}
	if m.Focus == FocusBrowser {
		m.setFocus(FocusViewer)
	} else {
		m.setFocus(FocusBrowser)
	}
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.Browser.SetFocused(f == FocusBrowser)
	m.Viewer.SetFocused(f == FocusViewer)
}

// toggleBrowser shows or hides the browser pane. Hiding it hands
// focus to the viewer so keys keep working.
func (m *Model) toggleBrowser() {
	m.BrowserVisible = !m.BrowserVisible
	if m.BrowserVisible {
		m.setFocus(FocusBrowser)
	} else {
		m.setFocus(FocusViewer)
	}
	m.ResizeComponents()
	m.SaveSessionState()
}
