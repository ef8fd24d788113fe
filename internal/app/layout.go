package app

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/parley/internal/ui/layout"
	"github.com/llehouerou/parley/internal/ui/render"
	"github.com/llehouerou/parley/internal/ui/styles"
)

// columns lays out the width the binder last published to the sidebar.
func (m *Model) columns() layout.Columns {
	return layout.Split(m.Width, m.Sidebar.DisplayWidth())
}

func (m *Model) contentHeight() int {
	return layout.ContentHeight(m.Height)
}

// resize pushes the current split to the panels.
func (m *Model) resize() {
	cols := m.columns()
	height := m.contentHeight()
	m.Sidebar.SetSize(cols.Sidebar, height)

	w, h := layout.InnerSize(cols.Chat, height)
	m.Chat.Width = w
	m.Chat.Height = h
	m.Chat.SetContent(m.chatContent(w))
}

func (m *Model) chatContent(width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.Chat()
	active := m.Sessions.Active()

	lines := []string{
		s.Title.Render(render.Truncate(active.Title, width)),
		s.Meta.Render(render.Truncate("updated "+humanize.RelTime(active.UpdatedAt, m.Clock.Now(), "ago", "from now"), width)),
		"",
	}
	if active.MessageCount == 0 {
		lines = append(lines, s.Empty.Render(render.Truncate("No messages yet.", width)))
	} else {
		lines = append(lines, s.Meta.Render(render.Truncate(humanize.Comma(int64(active.MessageCount))+" messages", width)))
	}
	return strings.Join(lines, "\n")
}
