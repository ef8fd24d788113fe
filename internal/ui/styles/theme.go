// Package styles holds parley's palette and the lipgloss styles built from it,
// grouped by the part of the screen they paint.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette names the colors parley draws with.
type Palette struct {
	Accent    lipgloss.Color // active chat, dragged handle, chat border
	TitleEnd  lipgloss.Color // far end of the sidebar title gradient
	Text      lipgloss.Color
	Dim       lipgloss.Color // timestamps, subtitles, toggle icon
	Faint     lipgloss.Color // separators, key hints, empty chat text
	Selection lipgloss.Color // background of the active row
	Rule      lipgloss.Color // idle handle and unfocused borders
	Error     lipgloss.Color
	Prompt    lipgloss.Color
}

var palette = Palette{
	Accent:    lipgloss.Color("#a78bfa"),
	TitleEnd:  lipgloss.Color("#f1a208"),
	Text:      lipgloss.Color("#c0c0c0"),
	Dim:       lipgloss.Color("#808080"),
	Faint:     lipgloss.Color("#585858"),
	Selection: lipgloss.Color("#303030"),
	Rule:      lipgloss.Color("#4a4a4a"),
	Error:     lipgloss.Color("#ff5555"),
	Prompt:    lipgloss.Color("#f1a208"),
}

// P returns the palette.
func P() Palette {
	return palette
}

// SidebarStyles paints the navigation sidebar.
type SidebarStyles struct {
	Subtitle       lipgloss.Style
	Separator      lipgloss.Style
	Toggle         lipgloss.Style
	Row            lipgloss.Style
	RowMeta        lipgloss.Style
	ActiveRow      lipgloss.Style
	ActiveRowMeta  lipgloss.Style
	Index          lipgloss.Style
	ActiveIndex    lipgloss.Style
	ActionKey      lipgloss.Style
	Handle         lipgloss.Style
	HandleDragging lipgloss.Style
}

// ChatStyles paints the chat pane.
type ChatStyles struct {
	Title lipgloss.Style
	Meta  lipgloss.Style
	Empty lipgloss.Style
}

// StatusStyles paints the status line.
type StatusStyles struct {
	Hint   lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

var (
	sidebarStyles = newSidebarStyles(palette)
	chatStyles    = newChatStyles(palette)
	statusStyles  = newStatusStyles(palette)
)

// Sidebar returns the sidebar styles.
func Sidebar() *SidebarStyles { return &sidebarStyles }

// Chat returns the chat pane styles.
func Chat() *ChatStyles { return &chatStyles }

// Status returns the status line styles.
func Status() *StatusStyles { return &statusStyles }

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func newSidebarStyles(p Palette) SidebarStyles {
	active := fg(p.Accent).Bold(true).Background(p.Selection)
	return SidebarStyles{
		Subtitle:       fg(p.Dim),
		Separator:      fg(p.Faint),
		Toggle:         fg(p.Dim),
		Row:            fg(p.Text),
		RowMeta:        fg(p.Dim),
		ActiveRow:      active,
		ActiveRowMeta:  fg(p.Text).Background(p.Selection),
		Index:          fg(p.Dim),
		ActiveIndex:    active,
		ActionKey:      fg(p.Faint),
		Handle:         fg(p.Rule),
		HandleDragging: fg(p.Accent).Bold(true),
	}
}

func newChatStyles(p Palette) ChatStyles {
	return ChatStyles{
		Title: fg(p.Text).Bold(true),
		Meta:  fg(p.Dim),
		Empty: fg(p.Faint),
	}
}

func newStatusStyles(p Palette) StatusStyles {
	return StatusStyles{
		Hint:   fg(p.Faint),
		Info:   fg(p.Dim),
		Error:  fg(p.Error),
		Prompt: fg(p.Prompt).Bold(true),
	}
}
