package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/parley/internal/keymap"
	"github.com/llehouerou/parley/internal/ui/layout"
	"github.com/llehouerou/parley/internal/ui/render"
	"github.com/llehouerou/parley/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	cols := m.columns()
	height := m.contentHeight()

	var panels []string
	if cols.Sidebar > 0 {
		panels = append(panels, m.Sidebar.View())
	}
	if cols.Chat > 0 {
		panels = append(panels, m.renderChat(cols.Chat, height))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	return m.Zones.Scan(body + "\n" + m.renderStatus())
}

func (m Model) renderChat(width, height int) string {
	w, h := layout.InnerSize(width, height)
	if w <= 0 || h <= 0 {
		return lipgloss.NewStyle().Width(width).Height(height).Render("")
	}
	return styles.ChatPanel(!m.pendingDelete).
		Width(w).
		Height(h).
		Render(m.Chat.View())
}

func (m Model) renderStatus() string {
	s := styles.Status()

	var left string
	switch {
	case m.pendingDelete:
		left = s.Prompt.Render(render.Truncate(m.deletePrompt(), m.Width/2))
	case m.Status.Message() != "":
		left = s.Error.Render(render.Truncate(m.Status.Message(), m.Width/2))
	default:
		left = s.Hint.Render(render.Truncate(m.keyHints(), m.Width/2))
	}

	dw := m.Sidebar.DisplayWidth().String()
	right := s.Info.Render("sidebar " + dw + " · " + m.Binder.DeviceClass().String())

	return render.PadStyled(render.Row(left, right, m.Width), m.Width)
}

func (m Model) keyHints() string {
	hint := func(a keymap.Action, label string) string {
		keys := m.Keys.KeysFor(a)
		if len(keys) == 0 {
			return ""
		}
		return keys[0] + " " + label
	}
	return strings.Join([]string{
		hint(keymap.ActionPrevSession, "prev"),
		hint(keymap.ActionNextSession, "next"),
		hint(keymap.ActionToggleSidebar, "sidebar"),
		hint(keymap.ActionQuit, "quit"),
	}, "  ")
}

func (m Model) deletePrompt() string {
	answer := func(keys []string) string {
		if len(keys) == 0 {
			return "?"
		}
		return keys[0]
	}
	return fmt.Sprintf("Delete %q? %s/%s",
		m.Sessions.Active().Title,
		answer(m.Confirm.KeysFor(keymap.ActionConfirm)),
		answer(m.Confirm.KeysFor(keymap.ActionCancel)))
}
