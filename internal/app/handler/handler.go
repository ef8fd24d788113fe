// Package handler provides a result type and chain function for key handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/keymap"
)

// Key is a key press together with the action it resolved to. Action is
// empty for unbound keys.
type Key struct {
	Msg    tea.KeyMsg
	Action keymap.Action
}

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler attempts to handle a key.
type Handler func(k Key) Result

// Chain runs handlers in order until one handles k.
func Chain(k Key, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(k); r.Handled {
			return r
		}
	}
	return NotHandled
}

// OnAction returns a handler that runs fn only for the given action.
func OnAction(action keymap.Action, fn func() tea.Cmd) Handler {
	return func(k Key) Result {
		if k.Action != action {
			return NotHandled
		}
		return Handled(fn())
	}
}
