// Package action carries component-to-app requests through the
// bubbletea update loop.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a UI component asks the app to do. ActionType
// names it for logging.
type Action interface {
	ActionType() string
}

// Msg is the envelope components emit; Source names the originating
// component so the app can route it.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
