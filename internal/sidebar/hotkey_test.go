package sidebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/parley/internal/input"
	"github.com/llehouerou/parley/internal/keymap"
)

type shiftRecorder struct {
	deltas []int
}

func (s *shiftRecorder) ShiftActive(delta int) {
	s.deltas = append(s.deltas, delta)
}

func TestHotkeyNavigator(t *testing.T) {
	bus := input.NewBus()
	rec := &shiftRecorder{}
	nav := NewHotkeyNavigator(bus, keymap.Default(), rec)
	defer nav.Close()

	msgs := []tea.KeyMsg{
		{Type: tea.KeyUp, Alt: true},
		{Type: tea.KeyDown, Alt: true},
		{Type: tea.KeyCtrlUp},
		{Type: tea.KeyCtrlDown},
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
		{Type: tea.KeyLeft, Alt: true},
		{Type: tea.KeyRunes, Runes: []rune("k"), Alt: true},
	}
	for _, m := range msgs {
		bus.Dispatch(m)
	}

	assert.Equal(t, []int{-1, 1, -1, 1}, rec.deltas)
}

func TestHotkeyNavigator_NoDebounce(t *testing.T) {
	bus := input.NewBus()
	rec := &shiftRecorder{}
	nav := NewHotkeyNavigator(bus, keymap.Default(), rec)
	defer nav.Close()

	for range 5 {
		bus.EmitKey(input.KeyEvent{Key: "alt+down"})
	}

	assert.Equal(t, []int{1, 1, 1, 1, 1}, rec.deltas)
}

func TestHotkeyNavigator_Close(t *testing.T) {
	bus := input.NewBus()
	rec := &shiftRecorder{}
	nav := NewHotkeyNavigator(bus, keymap.Default(), rec)

	nav.Close()
	bus.EmitKey(input.KeyEvent{Key: "alt+up"})

	assert.Empty(t, rec.deltas)
	assert.Equal(t, 0, bus.KeyListeners())
}
