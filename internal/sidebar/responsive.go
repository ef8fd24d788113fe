package sidebar

import "strconv"

// DeviceClass is the form factor of the terminal.
type DeviceClass int

const (
	// Desktop terminals show the sidebar beside the chat pane.
	Desktop DeviceClass = iota
	// Compact terminals show the sidebar across the whole screen.
	Compact
)

func (c DeviceClass) String() string {
	if c == Compact {
		return "compact"
	}
	return "desktop"
}

// ClassifyTerminal returns Compact when cols is below breakpoint.
func ClassifyTerminal(cols, breakpoint int) DeviceClass {
	if cols < breakpoint {
		return Compact
	}
	return Desktop
}

// DisplayWidth is the render-ready sidebar width.
type DisplayWidth struct {
	// Full means the sidebar spans the whole terminal.
	Full  bool
	Cells int
}

// FullWidth is the whole-terminal sentinel.
var FullWidth = DisplayWidth{Full: true}

// String formats the width as "100%" or "<n>c".
func (d DisplayWidth) String() string {
	if d.Full {
		return "100%"
	}
	return strconv.Itoa(d.Cells) + "c"
}

// Columns resolves the width against the terminal width.
func (d DisplayWidth) Columns(termWidth int) int {
	if d.Full {
		return termWidth
	}
	return max(0, min(d.Cells, termWidth))
}

// Resolve computes the display width and narrow classification for a
// persisted width on the given device class.
func (p Policy) Resolve(width int, class DeviceClass) (DisplayWidth, bool) {
	if class == Compact {
		return FullWidth, false
	}
	if p.IsNarrow(width, false) {
		return DisplayWidth{Cells: p.NarrowWidth}, true
	}
	return DisplayWidth{Cells: p.Clamp(width)}, false
}
