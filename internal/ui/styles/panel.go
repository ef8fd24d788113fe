package styles

import "github.com/charmbracelet/lipgloss"

// ChatPanel returns the bordered frame of the chat pane. The border takes
// the accent color while the pane has keyboard focus.
func ChatPanel(focused bool) lipgloss.Style {
	border := palette.Rule
	if focused {
		border = palette.Accent
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
