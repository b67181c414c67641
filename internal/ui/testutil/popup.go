package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/ui/popup"
)

// PopupHarness drives a popup.Popup through messages and records the
// commands it emits, so tests can assert on both view and effects.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and wraps it.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup exposes the wrapped popup for type assertions.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// View renders the wrapped popup.
func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg delivers msg and returns whatever command it produced.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey types a run of characters.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendUp presses the up arrow.
func (h *PopupHarness) SendUp() tea.Cmd { return h.SendMsg(tea.KeyMsg{Type: tea.KeyUp}) }

// SendDown presses the down arrow.
func (h *PopupHarness) SendDown() tea.Cmd { return h.SendMsg(tea.KeyMsg{Type: tea.KeyDown}) }

// SendEscape presses escape.
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendMsg(tea.KeyMsg{Type: tea.KeyEscape}) }

// LastCommand returns the most recently recorded command, nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// AssertViewContains returns a non-empty failure message when the
// rendered view, stripped of styling, does not contain substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	if !strings.Contains(StripANSI(h.View()), substr) {
		return "expected view to contain " + substr
	}
	return ""
}

// ExecuteCmd runs cmd and returns its message. Safe on nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
