package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/keymap"
)

var quitKey = Key{Msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, Action: keymap.ActionQuit}

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandled(t *testing.T) {
	t.Run("nil command", func(t *testing.T) {
		result := Handled(nil)
		if !result.Handled {
			t.Error("Handled(nil).Handled should be true")
		}
		if result.Cmd != nil {
			t.Error("Handled(nil).Cmd should be nil")
		}
	})

	t.Run("with command", func(t *testing.T) {
		result := Handled(func() tea.Msg { return "test" })
		if !result.Handled || result.Cmd == nil {
			t.Error("Handled(cmd) should be handled and carry the command")
		}
	})
}

func TestChain_NoHandlers(t *testing.T) {
	if r := Chain(quitKey); r.Handled || r.Cmd != nil {
		t.Errorf("Chain() with no handlers = %+v, want NotHandled", r)
	}
}

func TestChain_StopsAtFirstHandled(t *testing.T) {
	callOrder := []int{}
	h1 := func(Key) Result {
		callOrder = append(callOrder, 1)
		return NotHandled
	}
	h2 := func(Key) Result {
		callOrder = append(callOrder, 2)
		return Handled(func() tea.Msg { return "middle" })
	}
	h3 := func(Key) Result {
		callOrder = append(callOrder, 3)
		return HandledNoCmd
	}

	r := Chain(quitKey, h1, h2, h3)
	if !r.Handled {
		t.Error("Chain should return handled=true")
	}
	if r.Cmd == nil || r.Cmd() != "middle" {
		t.Error("Chain should return the command from h2")
	}
	if len(callOrder) != 2 || callOrder[0] != 1 || callOrder[1] != 2 {
		t.Errorf("Expected call order [1, 2], got %v", callOrder)
	}
}

func TestChain_NoHandlerHandles(t *testing.T) {
	calls := 0
	h := func(Key) Result {
		calls++
		return NotHandled
	}

	if r := Chain(quitKey, h, h, h); r.Handled {
		t.Error("Chain should return handled=false when no handler handles")
	}
	if calls != 3 {
		t.Errorf("All handlers should be called, got %d calls", calls)
	}
}

func TestChain_PassesKey(t *testing.T) {
	var got Key
	Chain(quitKey, func(k Key) Result {
		got = k
		return HandledNoCmd
	})
	if got.Action != keymap.ActionQuit || got.Msg.String() != "q" {
		t.Errorf("handler received %+v", got)
	}
}

func TestOnAction(t *testing.T) {
	ran := 0
	h := OnAction(keymap.ActionQuit, func() tea.Cmd {
		ran++
		return nil
	})

	if r := h(Key{Action: keymap.ActionNewSession}); r.Handled {
		t.Error("OnAction should ignore other actions")
	}
	if r := h(quitKey); !r.Handled {
		t.Error("OnAction should handle its action")
	}
	if ran != 1 {
		t.Errorf("fn ran %d times, want 1", ran)
	}
}
