// Package keymap maps key strings to the actions they trigger and
// carries the binding table the help popup renders.
package keymap

// Action identifies something the user can trigger with a key.
type Action string

const (
	// Global
	ActionQuit          Action = "quit"
	ActionSwitchFocus   Action = "switch_focus"
	ActionToggleBrowser Action = "toggle_browser"
	ActionHelp          Action = "help"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Browser
	ActionOpen        Action = "open"   // enter a folder or view an image
	ActionParent      Action = "parent" // up one folder
	ActionFilter      Action = "filter"
	ActionClearFilter Action = "clear_filter"

	// Viewer
	ActionNextImage      Action = "next_image"
	ActionPrevImage      Action = "prev_image"
	ActionToggleUpscale  Action = "toggle_upscale"
	ActionCycleFilter    Action = "cycle_filter"
	ActionToggleFrame    Action = "toggle_frame"
	ActionToggleProtocol Action = "toggle_protocol"
	ActionReload         Action = "reload"
)
