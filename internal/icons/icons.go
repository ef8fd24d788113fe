package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Chat     string
	NewChat  string
	Delete   string
	Collapse string
	Expand   string
	Active   string
}

var (
	nerdIcons = Icons{
		Chat:     "\uf086 ", // nf-fa-comments
		NewChat:  "\uf067",  // nf-fa-plus
		Delete:   "\uf1f8",  // nf-fa-trash
		Collapse: "\uf104",  // nf-fa-angle_left
		Expand:   "\uf105",  // nf-fa-angle_right
		Active:   "\uf111",  // nf-fa-circle
	}

	unicodeIcons = Icons{
		Chat:     "💬 ",
		NewChat:  "＋",
		Delete:   "✕",
		Collapse: "◀",
		Expand:   "▶",
		Active:   "●",
	}

	noneIcons = Icons{
		Chat:     "",
		NewChat:  "+",
		Delete:   "x",
		Collapse: "<",
		Expand:   ">",
		Active:   "*",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatChat formats a chat title with the appropriate icon.
func FormatChat(title string) string {
	if current == noneIcons {
		return title
	}
	return current.Chat + title
}

// NewChat returns the new-chat action icon.
func NewChat() string {
	return current.NewChat
}

// Delete returns the delete-chat action icon.
func Delete() string {
	return current.Delete
}

// Toggle returns the icon for the collapse/expand affordance. When the
// panel is narrow the icon points outward.
func Toggle(narrow bool) string {
	if narrow {
		return current.Expand
	}
	return current.Collapse
}

// Active returns the marker for the active chat.
func Active() string {
	return current.Active
}
