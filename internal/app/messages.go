package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/state"
)

// ReapTickMsg asks the drag controller to drop an idle session. Version
// ties the tick to the drag that scheduled it.
type ReapTickMsg struct {
	Version int
}

// reapTick schedules the next idle check for the current drag.
func (m *Model) reapTick() tea.Cmd {
	m.reapVersion++
	version := m.reapVersion
	interval := m.Timing.MaxSessionIdle
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ReapTickMsg{Version: version}
	})
}

// WidthSaveFailedMsg carries a failed background write of the sidebar width.
type WidthSaveFailedMsg struct {
	state.WidthSaveError
}

// waitForWidthSaveError waits for the next width write failure.
func waitForWidthSaveError(ch <-chan state.WidthSaveError) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return WidthSaveFailedMsg{WidthSaveError: e}
	}
}
