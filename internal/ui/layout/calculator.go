// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/parley/internal/sidebar"

// StatusBarHeight is the height of the status line below the panels.
const StatusBarHeight = 1

// PanelBorderSize is the cells taken by a bordered panel on each axis.
const PanelBorderSize = 2

// ContentHeight returns the height left for the panels once the status line
// is drawn.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-StatusBarHeight, 0)
}

// Columns is the horizontal split between the sidebar and the chat pane.
type Columns struct {
	Sidebar int
	Chat    int
}

// Split divides windowWidth between the sidebar and the chat pane exactly
// as width says. A full-width sidebar leaves the chat pane no columns.
func Split(windowWidth int, width sidebar.DisplayWidth) Columns {
	if windowWidth <= 0 {
		return Columns{}
	}
	side := width.Columns(windowWidth)
	return Columns{Sidebar: side, Chat: windowWidth - side}
}

// InnerSize returns the content size of a bordered panel.
func InnerSize(width, height int) (int, int) {
	return max(width-PanelBorderSize, 0), max(height-PanelBorderSize, 0)
}
