package sidebar

import (
	"github.com/llehouerou/parley/internal/input"
	"github.com/llehouerou/parley/internal/keymap"
)

// Sessions is the collection whose active entry the hotkeys move.
type Sessions interface {
	ShiftActive(delta int)
}

// KeySource registers application-scoped key listeners.
type KeySource interface {
	ListenKey(h input.KeyHandler) input.Registration
}

// HotkeyNavigator moves the active chat on modifier+arrow presses. It keeps
// no state; every matching press shifts the active session once.
type HotkeyNavigator struct {
	reg input.Registration
}

// NewHotkeyNavigator starts listening on src.
func NewHotkeyNavigator(src KeySource, resolver *keymap.Resolver, sessions Sessions) *HotkeyNavigator {
	reg := src.ListenKey(func(ev input.KeyEvent) {
		switch resolver.Resolve(ev.Key) {
		case keymap.ActionPrevSession:
			sessions.ShiftActive(-1)
		case keymap.ActionNextSession:
			sessions.ShiftActive(1)
		}
	})
	return &HotkeyNavigator{reg: reg}
}

// Close stops listening.
func (h *HotkeyNavigator) Close() {
	h.reg.Release()
}
