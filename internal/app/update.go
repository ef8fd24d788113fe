package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/errmsg"
	"github.com/llehouerou/parley/internal/sidebar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReapTickMsg:
		return m.handleReapTick(msg)

	case WidthSaveFailedMsg:
		width := sidebar.DisplayWidth{Cells: msg.Width}.String()
		m.Status.Set(errmsg.FormatWith(errmsg.OpSidebarSave, width, msg.Err))
		return m, waitForWidthSaveError(m.StateMgr.WidthSaveErrors())
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	class := sidebar.ClassifyTerminal(msg.Width, m.CompactBreakpoint)
	if class != m.Binder.DeviceClass() {
		m.Logger.Debug("device class changed", "class", class.String(), "cols", msg.Width)
	}
	m.Binder.SetDeviceClass(class)
	m.resize()
	return m, nil
}

func (m Model) handleReapTick(msg ReapTickMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.reapVersion || !m.Drag.Dragging() {
		return m, nil
	}
	if m.Drag.Reap() {
		m.Sidebar.SetDragging(false)
		return m, nil
	}
	cmd := m.reapTick()
	return m, cmd
}
