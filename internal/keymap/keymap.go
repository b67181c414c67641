package keymap

// Binding ties an action to its keys within one focus context. The
// table below drives both the resolver and the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "browser", "viewer"
}

// Bindings is the full binding table. Keys are unique across contexts
// because a single resolver serves the whole app.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionToggleBrowser, []string{"b"}, "Toggle browser panel", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Browser
	{ActionMoveDown, []string{"j", "down"}, "Move down", "browser"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "browser"},
	{ActionJumpStart, []string{"g", "home"}, "First entry", "browser"},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", "browser"},
	{ActionPageUp, []string{"pgup"}, "Page up", "browser"},
	{ActionPageDown, []string{"pgdown"}, "Page down", "browser"},
	{ActionOpen, []string{"enter", "l", "right"}, "Open folder or image", "browser"},
	{ActionParent, []string{"h", "left", "backspace"}, "Parent folder", "browser"},
	{ActionFilter, []string{"/"}, "Filter entries", "browser"},
	{ActionClearFilter, []string{"esc"}, "Clear filter", "browser"},

	// Viewer
	{ActionNextImage, []string{"n", "space"}, "Next image", "viewer"},
	{ActionPrevImage, []string{"p"}, "Previous image", "viewer"},
	{ActionToggleUpscale, []string{"u"}, "Toggle upscaling", "viewer"},
	{ActionCycleFilter, []string{"f"}, "Cycle resize filter", "viewer"},
	{ActionToggleFrame, []string{"F"}, "Toggle frame", "viewer"},
	{ActionToggleProtocol, []string{"P"}, "Toggle graphics protocol", "viewer"},
	{ActionReload, []string{"r"}, "Reload image", "viewer"},
}

// ByContext selects the bindings for one context, preserving table
// order.
func ByContext(context string) []Binding {
	var out []Binding
	for _, b := range Bindings {
		if b.Context == context {
			out = append(out, b)
		}
	}
	return out
}
