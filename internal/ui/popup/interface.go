package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is the contract a modal component has to satisfy so the app can
// route keys to it and draw it over the panes. View returns the inner
// content only; the caller wraps it in a border and centers it.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}
