// Package session holds the list of chat conversations shown in the sidebar
// and tracks which one is active.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultTitle names a conversation that has no messages yet.
const DefaultTitle = "New Chat"

// Session is one chat conversation.
type Session struct {
	ID           string
	Title        string
	UpdatedAt    time.Time
	MessageCount int
}

// Collection is an ordered list of sessions with an active index. It always
// holds at least one session.
type Collection struct {
	clock    clockwork.Clock
	sessions []Session
	active   int
	onChange func()
}

// NewCollection creates a collection from saved sessions. An empty list
// gets one fresh session; an out of range active index is clamped.
func NewCollection(clock clockwork.Clock, sessions []Session, active int) *Collection {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Collection{
		clock:    clock,
		sessions: append([]Session(nil), sessions...),
	}
	if len(c.sessions) == 0 {
		c.sessions = []Session{c.fresh(DefaultTitle)}
	}
	c.active = max(0, min(active, len(c.sessions)-1))
	return c
}

// SetOnChange registers fn to run after every mutation.
func (c *Collection) SetOnChange(fn func()) {
	c.onChange = fn
}

// Len returns the number of sessions.
func (c *Collection) Len() int {
	return len(c.sessions)
}

// Sessions returns a copy of the sessions in display order.
func (c *Collection) Sessions() []Session {
	return append([]Session(nil), c.sessions...)
}

// ActiveIndex returns the index of the active session.
func (c *Collection) ActiveIndex() int {
	return c.active
}

// Active returns the active session.
func (c *Collection) Active() Session {
	return c.sessions[c.active]
}

// ShiftActive moves the active index by delta, wrapping at both ends.
func (c *Collection) ShiftActive(delta int) {
	n := len(c.sessions)
	next := ((c.active+delta)%n + n) % n
	if next == c.active {
		return
	}
	c.active = next
	c.changed()
}

// Select makes index the active session. Out of range indexes are ignored.
func (c *Collection) Select(index int) bool {
	if index < 0 || index >= len(c.sessions) || index == c.active {
		return false
	}
	c.active = index
	c.changed()
	return true
}

// New inserts a fresh session at the top and activates it.
func (c *Collection) New(title string) Session {
	if title == "" {
		title = DefaultTitle
	}
	s := c.fresh(title)
	c.sessions = append([]Session{s}, c.sessions...)
	c.active = 0
	c.changed()
	return s
}

// DeleteActive removes the active session. The session below it becomes
// active; deleting the last remaining session replaces it with a fresh one.
func (c *Collection) DeleteActive() Session {
	removed := c.sessions[c.active]
	c.sessions = append(c.sessions[:c.active], c.sessions[c.active+1:]...)
	if len(c.sessions) == 0 {
		c.sessions = []Session{c.fresh(DefaultTitle)}
	}
	c.active = min(c.active, len(c.sessions)-1)
	c.changed()
	return removed
}

func (c *Collection) fresh(title string) Session {
	return Session{
		ID:        uuid.NewString(),
		Title:     title,
		UpdatedAt: c.clock.Now(),
	}
}

func (c *Collection) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
