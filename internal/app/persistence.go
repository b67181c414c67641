// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/halftone/internal/errmsg"
	"github.com/llehouerou/halftone/internal/state"
)

// SaveSessionState persists the current folder, selection and pane
// layout.
func (m *Model) SaveSessionState() {
	m.StateMgr.SaveSession(state.SessionState{
		CurrentPath:    m.Browser.Dir(),
		SelectedName:   m.Browser.SelectedName(),
		BrowserVisible: m.BrowserVisible,
	})
}

// SaveViewerSettings persists the current display options. The toggles
// still apply for this run when the write fails, so the failure is
// only surfaced in the status bar.
func (m *Model) SaveViewerSettings() {
	err := m.StateMgr.SaveSettings(state.ViewerSettings{
		Upscale: m.Viewer.Upscale(),
		Filter:  m.Viewer.FilterName(),
		Frame:   m.Viewer.Frame(),
	})
	if err != nil {
		m.statusMessage = errmsg.Format(errmsg.OpSettingsSave, err)
	}
}
