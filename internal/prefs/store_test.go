package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	saved []int
}

func (r *recordingPersister) SaveSidebarWidth(width int) {
	r.saved = append(r.saved, width)
}

func TestStore_ReadReturnsInitial(t *testing.T) {
	s := New(Prefs{SidebarWidth: 32}, nil)
	assert.Equal(t, 32, s.Read().SidebarWidth)
}

func TestStore_UpdateNotifiesSubscribersInOrder(t *testing.T) {
	s := New(Prefs{SidebarWidth: 32}, nil)

	var order []string
	s.Subscribe(func(p Prefs) { order = append(order, "first") })
	s.Subscribe(func(p Prefs) {
		order = append(order, "second")
		assert.Equal(t, 40, p.SidebarWidth)
	})

	s.Update(func(p *Prefs) { p.SidebarWidth = 40 })

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 40, s.Read().SidebarWidth)
}

func TestStore_UpdateNotifiesEvenWhenUnchanged(t *testing.T) {
	s := New(Prefs{SidebarWidth: 32}, nil)
	calls := 0
	s.Subscribe(func(Prefs) { calls++ })

	s.Update(func(p *Prefs) { p.SidebarWidth = 32 })

	assert.Equal(t, 1, calls)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := New(Prefs{}, nil)
	calls := 0
	unsub := s.Subscribe(func(Prefs) { calls++ })
	require.Equal(t, 1, s.Subscribers())

	unsub()
	unsub()
	s.Update(func(p *Prefs) { p.SidebarWidth = 10 })

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Subscribers())
}

func TestStore_PersistsOnlyChangedWidth(t *testing.T) {
	p := &recordingPersister{}
	s := New(Prefs{SidebarWidth: 32}, p)

	s.Update(func(pr *Prefs) { pr.SidebarWidth = 32 })
	s.Update(func(pr *Prefs) { pr.SidebarWidth = 6 })
	s.Update(func(pr *Prefs) { pr.SidebarWidth = 32 })

	assert.Equal(t, []int{6, 32}, p.saved)
}

func TestStore_SubscriberMayUpdateReentrantly(t *testing.T) {
	s := New(Prefs{SidebarWidth: 10}, nil)
	s.Subscribe(func(p Prefs) {
		if p.SidebarWidth == 10 {
			return
		}
		if p.SidebarWidth < 20 {
			s.Update(func(pr *Prefs) { pr.SidebarWidth = 20 })
		}
	})

	s.Update(func(p *Prefs) { p.SidebarWidth = 15 })

	assert.Equal(t, 20, s.Read().SidebarWidth)
}
