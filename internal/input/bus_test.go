package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPointerFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   PointerEvent
		wantOK bool
	}{
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want:   PointerEvent{Kind: PointerDown, X: 3, Y: 4, Pressed: true},
			wantOK: true,
		},
		{
			name:   "right press ignored",
			msg:    tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantOK: false,
		},
		{
			name:   "wheel ignored",
			msg:    tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			wantOK: false,
		},
		{
			name:   "drag motion",
			msg:    tea.MouseMsg{X: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			want:   PointerEvent{Kind: PointerMove, X: 10, Pressed: true},
			wantOK: true,
		},
		{
			name:   "hover motion",
			msg:    tea.MouseMsg{X: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
			want:   PointerEvent{Kind: PointerMove, X: 10},
			wantOK: true,
		},
		{
			name:   "release",
			msg:    tea.MouseMsg{X: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			want:   PointerEvent{Kind: PointerUp, X: 7},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointerFromMouse(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBus_ReleaseStopsDelivery(t *testing.T) {
	b := NewBus()
	var got []PointerKind
	reg := b.ListenPointer(func(ev PointerEvent) { got = append(got, ev.Kind) })
	assert.True(t, reg.Active())
	assert.Equal(t, 1, b.PointerListeners())

	b.EmitPointer(PointerEvent{Kind: PointerMove})
	reg.Release()
	reg.Release()
	b.EmitPointer(PointerEvent{Kind: PointerMove})

	assert.Equal(t, []PointerKind{PointerMove}, got)
	assert.False(t, reg.Active())
	assert.Equal(t, 0, b.PointerListeners())
}

func TestBus_ListenerMayReleaseItselfDuringDelivery(t *testing.T) {
	b := NewBus()
	calls := 0
	var reg Registration
	reg = b.ListenPointer(func(PointerEvent) {
		calls++
		reg.Release()
	})
	other := 0
	b.ListenPointer(func(PointerEvent) { other++ })

	b.EmitPointer(PointerEvent{Kind: PointerUp})
	b.EmitPointer(PointerEvent{Kind: PointerUp})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestBus_ListenerReleasedByEarlierListenerIsSkipped(t *testing.T) {
	b := NewBus()
	var second Registration
	b.ListenPointer(func(PointerEvent) { second.Release() })
	called := false
	second = b.ListenPointer(func(PointerEvent) { called = true })

	b.EmitPointer(PointerEvent{Kind: PointerMove})

	assert.False(t, called)
}

func TestBus_DispatchKey(t *testing.T) {
	b := NewBus()
	var keys []string
	b.ListenKey(func(ev KeyEvent) { keys = append(keys, ev.Key) })

	handled := b.Dispatch(tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	assert.True(t, handled)
	b.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlDown})

	assert.Equal(t, []string{"alt+up", "ctrl+down"}, keys)
}

func TestBus_DispatchIgnoresOtherMessages(t *testing.T) {
	b := NewBus()
	assert.False(t, b.Dispatch(tea.WindowSizeMsg{Width: 80}))
}
