// Package input fans terminal mouse and key events out to application-scoped
// listeners. A listener receives every event no matter which panel the
// cursor is over, so a drag keeps tracking after the pointer leaves the
// element that started it.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PointerKind classifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a primary-button mouse event in terminal cells.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
	// Pressed reports whether the primary button was held when the event
	// was generated. Motion reports in all-motion mode arrive unpressed.
	Pressed bool
}

// KeyEvent is a key press.
type KeyEvent struct {
	// Key is the bubbletea key string, e.g. "alt+up" or "ctrl+down".
	Key string
}

// PointerHandler receives pointer events.
type PointerHandler func(PointerEvent)

// KeyHandler receives key events.
type KeyHandler func(KeyEvent)

// Registration is the lifetime token of a listener.
type Registration interface {
	// Release removes the listener. Calling it more than once is a no-op.
	Release()
	// Active reports whether the listener is still registered.
	Active() bool
}

// Bus dispatches events to registered listeners. It is not safe for
// concurrent use; it lives on the bubbletea update loop.
type Bus struct {
	nextID  int
	pointer map[int]PointerHandler
	keys    map[int]KeyHandler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		pointer: make(map[int]PointerHandler),
		keys:    make(map[int]KeyHandler),
	}
}

type registration struct {
	release func()
	active  func() bool
}

func (r registration) Release()     { r.release() }
func (r registration) Active() bool { return r.active() }

// ListenPointer registers h for every pointer event.
func (b *Bus) ListenPointer(h PointerHandler) Registration {
	id := b.nextID
	b.nextID++
	b.pointer[id] = h
	return registration{
		release: func() { delete(b.pointer, id) },
		active: func() bool {
			_, ok := b.pointer[id]
			return ok
		},
	}
}

// ListenKey registers h for every key event.
func (b *Bus) ListenKey(h KeyHandler) Registration {
	id := b.nextID
	b.nextID++
	b.keys[id] = h
	return registration{
		release: func() { delete(b.keys, id) },
		active: func() bool {
			_, ok := b.keys[id]
			return ok
		},
	}
}

// PointerListeners returns the number of registered pointer listeners.
func (b *Bus) PointerListeners() int {
	return len(b.pointer)
}

// KeyListeners returns the number of registered key listeners.
func (b *Bus) KeyListeners() int {
	return len(b.keys)
}

// EmitPointer delivers ev to the listeners registered when the call began.
// Listeners released by an earlier listener during the same delivery are
// skipped.
func (b *Bus) EmitPointer(ev PointerEvent) {
	for _, id := range b.sortedPointerIDs() {
		if h, ok := b.pointer[id]; ok {
			h(ev)
		}
	}
}

// EmitKey delivers ev to the registered key listeners.
func (b *Bus) EmitKey(ev KeyEvent) {
	for _, id := range b.sortedKeyIDs() {
		if h, ok := b.keys[id]; ok {
			h(ev)
		}
	}
}

// Dispatch converts a bubbletea message into a bus event and emits it.
// It reports whether msg was a mouse or key event.
func (b *Bus) Dispatch(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		ev, ok := PointerFromMouse(msg)
		if ok {
			b.EmitPointer(ev)
		}
		return ok
	case tea.KeyMsg:
		b.EmitKey(KeyEvent{Key: msg.String()})
		return true
	}
	return false
}

// PointerFromMouse maps a bubbletea mouse message to a pointer event.
// Wheel and non-primary buttons are not pointer events.
func PointerFromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return PointerEvent{}, false
		}
		ev.Kind = PointerDown
		ev.Pressed = true
	case tea.MouseActionMotion:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Pressed = true
		case tea.MouseButtonNone:
		default:
			return PointerEvent{}, false
		}
		ev.Kind = PointerMove
	case tea.MouseActionRelease:
		// Terminals usually report releases without the button.
		ev.Kind = PointerUp
	default:
		return PointerEvent{}, false
	}
	return ev, true
}

func (b *Bus) sortedPointerIDs() []int {
	ids := make([]int, 0, len(b.pointer))
	for id := 0; id < b.nextID; id++ {
		if _, ok := b.pointer[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (b *Bus) sortedKeyIDs() []int {
	ids := make([]int, 0, len(b.keys))
	for id := 0; id < b.nextID; id++ {
		if _, ok := b.keys[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
