// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/errmsg"
	"github.com/llehouerou/halftone/internal/ui/action"
	"github.com/llehouerou/halftone/internal/ui/browser"
	"github.com/llehouerou/halftone/internal/ui/helpbindings"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.pendingTransmit = ""
	next, cmd := m.update(msg)
	if app, ok := next.(Model); ok {
		// Collect the kitty payload here so View emits it exactly once
		app.pendingTransmit = app.Viewer.PendingTransmit()
		return app, cmd
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case browser.NavigationChangedMsg:
		return m.handleNavigationChanged(msg)

	case browser.OpenMsg:
		m.pendingLoad = msg.Path
		return m, loadImageCmd(msg.Path)

	case browser.ProbeResultMsg:
		var cmd tea.Cmd
		m.Browser, cmd = m.Browser.Update(msg)
		return m, cmd

	case ImageLoadedMsg:
		return m.handleImageLoaded(msg)

	case action.Msg:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.Popups.HideHelp()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.ResizeComponents()
	return m, nil
}

// handleNavigationChanged restores the remembered selection when the
// browser enters a new folder, then persists the session.
func (m Model) handleNavigationChanged(msg browser.NavigationChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Dir != m.lastDir {
		m.lastDir = msg.Dir
		if name, err := m.StateMgr.GetFolderSelection(msg.Dir); err == nil && name != "" {
			if m.Browser.SelectByName(name) {
				cmd = m.Browser.ProbeSelectedCmd()
			}
		}
	}
	m.SaveSessionState()
	return m, cmd
}

func (m Model) handleImageLoaded(msg ImageLoadedMsg) (tea.Model, tea.Cmd) {
	// A slower load can finish after a newer one was requested
	if m.pendingLoad != "" && msg.Path != m.pendingLoad {
		return m, nil
	}
	m.pendingLoad = ""

	if msg.Err != nil {
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpImageLoad, msg.Path, msg.Err))
		return m, nil
	}

	m.Viewer.SetImage(msg.Path, msg.Img)
	m.current = msg.Info
	m.SaveSessionState()
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Active popups take all keys
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	// Filter input swallows everything except its own exit keys
	if m.BrowserVisible && m.Browser.Filtering() {
		var cmd tea.Cmd
		m.Browser, cmd = m.Browser.Update(msg)
		return m, cmd
	}

	m.statusMessage = ""

	if a := m.keys.Resolve(msg.String()); a != "" {
		if handled, cmd := m.handleGlobalAction(a); handled {
			return m, cmd
		}
		if handled, cmd := m.handleViewerAction(a); handled {
			return m, cmd
		}
	}

	// Remaining keys go to the focused pane. The browser handles its
	// own movement and navigation keys.
	if m.Focus == FocusBrowser && m.BrowserVisible {
		var cmd tea.Cmd
		m.Browser, cmd = m.Browser.Update(msg)
		return m, cmd
	}

	return m, nil
}
