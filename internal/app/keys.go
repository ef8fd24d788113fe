package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/app/handler"
	"github.com/llehouerou/parley/internal/keymap"
)

// handleKey publishes the key to the application-scoped listeners (the
// session hotkeys live there) and then runs the local handler chain.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pendingDelete {
		// The prompt owns the keyboard: session hotkeys must not move the
		// chat it asks about.
		m.handleDeletePrompt(handler.Key{Msg: msg, Action: m.Confirm.Resolve(msg.String())})
		m.resize()
		return m, nil
	}

	m.Input.Dispatch(msg)
	action := m.Keys.Resolve(msg.String())

	if action != "" {
		m.Status.Clear()
	}

	r := handler.Chain(handler.Key{Msg: msg, Action: action},
		handler.OnAction(keymap.ActionQuit, func() tea.Cmd { return tea.Quit }),
		m.handleSidebarKeys,
		m.handleSessionKeys,
		m.handleChatKeys,
	)
	m.resize()
	return m, r.Cmd
}

func (m *Model) handleSidebarKeys(k handler.Key) handler.Result {
	if k.Action != keymap.ActionToggleSidebar {
		return handler.NotHandled
	}
	// Same effect as a click on the resize handle.
	m.Drag.Cancel()
	m.Drag.Toggle()
	return handler.HandledNoCmd
}

func (m *Model) handleSessionKeys(k handler.Key) handler.Result {
	switch k.Action { //nolint:exhaustive // other actions handled by other handlers
	case keymap.ActionPrevSession, keymap.ActionNextSession:
		// Already applied by the hotkey navigator on the input bus.
		return handler.HandledNoCmd
	case keymap.ActionNewSession:
		m.Sessions.New("")
		return handler.HandledNoCmd
	case keymap.ActionDeleteSession:
		m.pendingDelete = true
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handleChatKeys scrolls the chat pane.
func (m *Model) handleChatKeys(k handler.Key) handler.Result {
	var cmd tea.Cmd
	m.Chat, cmd = m.Chat.Update(k.Msg)
	return handler.Handled(cmd)
}

// handleDeletePrompt answers the delete confirmation. Any key other than a
// confirm key cancels.
func (m *Model) handleDeletePrompt(k handler.Key) handler.Result {
	m.pendingDelete = false
	if k.Action != keymap.ActionConfirm {
		return handler.HandledNoCmd
	}
	deleted := m.Sessions.DeleteActive()
	m.Logger.Debug("chat deleted", "id", deleted.ID)
	return handler.HandledNoCmd
}
