// Package prefs holds the in-memory copy of persisted UI preferences and
// notifies subscribers when they change.
package prefs

import "sync"

// Prefs is the set of preferences owned by the store.
type Prefs struct {
	SidebarWidth int
}

// Persister writes preferences to durable storage.
// state.Manager implements it with a debounced sqlite write.
type Persister interface {
	SaveSidebarWidth(width int)
}

// Store is a single-writer preference cell with synchronous change
// notification.
type Store struct {
	mu        sync.Mutex
	prefs     Prefs
	persister Persister
	subs      map[int]func(Prefs)
	nextID    int
}

// New creates a store seeded with initial. persister may be nil.
func New(initial Prefs, persister Persister) *Store {
	return &Store{
		prefs:     initial,
		persister: persister,
		subs:      make(map[int]func(Prefs)),
	}
}

// Read returns a copy of the current preferences.
func (s *Store) Read() Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Update applies fn to a copy of the preferences, stores the result and
// notifies every subscriber before returning. Subscribers are notified even
// if fn left the value unchanged.
func (s *Store) Update(fn func(p *Prefs)) {
	s.mu.Lock()
	next := s.prefs
	fn(&next)
	prevWidth := s.prefs.SidebarWidth
	s.prefs = next
	subs := make([]func(Prefs), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	if s.persister != nil && next.SidebarWidth != prevWidth {
		s.persister.SaveSidebarWidth(next.SidebarWidth)
	}
	for _, sub := range subs {
		sub(next)
	}
}

// Subscribe registers fn to be called after every Update. The returned
// function removes the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(Prefs)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
