// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionToggleSidebar Action = "toggle_sidebar"

	// Session actions
	ActionPrevSession   Action = "prev_session"
	ActionNextSession   Action = "next_session"
	ActionNewSession    Action = "new_session"
	ActionDeleteSession Action = "delete_session"

	// Confirmation prompt
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)
