// internal/app/popup_manager.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/halftone/internal/ui/helpbindings"
	"github.com/llehouerou/halftone/internal/ui/popup"
)

// PopupType identifies which popup is on top.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupError
)

// PopupManager owns the modal layer: the keybinding help popup and the
// error box. Both can be open at once; the error box stacks on top and
// swallows keys until dismissed.
type PopupManager struct {
	help     helpbindings.Model
	showHelp bool
	errMsg   string

	width  int
	height int
}

func NewPopupManager() PopupManager {
	return PopupManager{help: helpbindings.New()}
}

// SetSize records the screen dimensions used to center the popups.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
}

// ActivePopup reports the topmost open popup, PopupNone when the modal
// layer is empty.
func (p *PopupManager) ActivePopup() PopupType {
	switch {
	case p.errMsg != "":
		return PopupError
	case p.showHelp:
		return PopupHelp
	default:
		return PopupNone
	}
}

// ShowHelp opens the help popup listing the bindings of contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp closes the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// IsHelpVisible reports whether the help popup is open.
func (p *PopupManager) IsHelpVisible() bool {
	return p.showHelp
}

// ShowError opens the error box with msg.
func (p *PopupManager) ShowError(msg string) {
	p.errMsg = msg
}

// IsErrorVisible reports whether the error box is open.
func (p *PopupManager) IsErrorVisible() bool {
	return p.errMsg != ""
}

// HandleKey gives the modal layer first crack at a key press and
// reports whether it consumed it. Any key dismisses the error box;
// below it, keys go to the help popup while that is open.
func (p *PopupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.errMsg != "" {
		p.errMsg = ""
		return true, nil
	}
	if p.showHelp {
		// Update mutates the model in place
		_, cmd := p.help.Update(msg)
		return true, cmd
	}
	return false, nil
}

// RenderOverlay composes the open popups over the base view, the error
// box last so it draws above help, matching the key order.
func (p *PopupManager) RenderOverlay(base string) string {
	if p.showHelp {
		view := popup.RenderBordered(p.help.View(), p.width, p.height)
		base = popup.Compose(base, view, p.width, p.height)
	}
	if p.errMsg != "" {
		dlg := popup.New()
		dlg.Title = "Error"
		dlg.Content = p.errMsg
		dlg.Footer = "Press any key to dismiss"
		base = popup.Compose(base, dlg.Render(p.width, p.height), p.width, p.height)
	}
	return base
}
