package keymap

// Context groups bindings that are active together.
type Context string

const (
	ContextGlobal   Context = "global"
	ContextSessions Context = "sessions"
	// ContextConfirm is only active while a y/n prompt is open. It reuses
	// keys the other contexts bind.
	ContextConfirm Context = "confirm"
)

// Binding maps keys to an action and documents it.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// Session switching fires on an arrow with alt or ctrl held, whatever other
// modifiers come along. Terminals disagree on which one they report.
var (
	prevSessionKeys = []string{
		"alt+up", "ctrl+up",
		"alt+ctrl+up", "ctrl+shift+up", "alt+shift+up", "alt+ctrl+shift+up",
	}
	nextSessionKeys = []string{
		"alt+down", "ctrl+down",
		"alt+ctrl+down", "ctrl+shift+down", "alt+shift+down", "alt+ctrl+shift+down",
	}
)

// All contains all key bindings.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionToggleSidebar, []string{"ctrl+b"}, "Collapse/expand sidebar", ContextGlobal},

	{ActionPrevSession, prevSessionKeys, "Previous chat", ContextSessions},
	{ActionNextSession, nextSessionKeys, "Next chat", ContextSessions},
	{ActionNewSession, []string{"n"}, "New chat", ContextSessions},
	{ActionDeleteSession, []string{"ctrl+d"}, "Delete chat", ContextSessions},

	{ActionConfirm, []string{"y", "enter"}, "Confirm", ContextConfirm},
	{ActionCancel, []string{"n", "esc"}, "Cancel", ContextConfirm},
}

// ByContext returns the bindings of one context, in order.
func ByContext(bindings []Binding, context Context) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default resolves the keys of the main screen.
func Default() *Resolver {
	return NewResolver(All, ContextGlobal, ContextSessions)
}

// Confirm resolves the keys of a y/n prompt.
func Confirm() *Resolver {
	return NewResolver(All, ContextConfirm)
}
