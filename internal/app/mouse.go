package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/input"
	"github.com/llehouerou/parley/internal/ui/sidebarview"
)

// handleMouse feeds the event to the application-scoped listeners first, so
// an active drag sees it wherever the pointer is, then routes presses to the
// panel under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.Input.Dispatch(msg)

	var cmd tea.Cmd
	ev, ok := input.PointerFromMouse(msg)
	switch {
	case ok && ev.Kind == input.PointerDown:
		m.pendingDelete = false
		cmd = m.handlePress(msg)
	case msg.Action == tea.MouseActionPress && msg.X >= m.Sidebar.Width():
		// Wheel scrolling over the chat pane.
		m.Chat, cmd = m.Chat.Update(msg)
	}

	m.Sidebar.SetDragging(m.Drag.Dragging())
	m.resize()
	return m, cmd
}

func (m *Model) handlePress(msg tea.MouseMsg) tea.Cmd {
	if msg.X >= m.Sidebar.Width() {
		m.Drag.Cancel()
		return nil
	}

	hit := m.Sidebar.HitTest(msg)
	if hit.Kind != sidebarview.HitHandle {
		// A press anywhere else means the release of a running drag was lost.
		m.Drag.Cancel()
	}

	switch hit.Kind {
	case sidebarview.HitHandle:
		m.Drag.Start(msg.X)
		return m.reapTick()
	case sidebarview.HitToggle:
		m.Drag.Toggle()
	case sidebarview.HitRow:
		m.Sessions.Select(hit.Row)
	case sidebarview.HitNewChat:
		m.Sessions.New("")
	case sidebarview.HitDeleteChat:
		m.pendingDelete = true
	case sidebarview.HitNone:
	}
	return nil
}
