// Package theme holds the light/dark theme state shared by every view.
package theme

import "sync"

// Mode is the active theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// Opposite returns the mode Toggle would switch to.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Store owns the current Mode and notifies subscribers on every change.
// It starts in Light and is never persisted.
type Store struct {
	mu     sync.Mutex
	mode   Mode
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(Mode)
}

// NewStore returns a store in Light mode.
func NewStore() *Store {
	return &Store{mode: Light}
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode and synchronously notifies subscribers, in
// subscription order, before returning the new mode.
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	s.mode = s.mode.Opposite()
	mode := s.mode
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(mode)
	}
	return mode
}

// Subscribe registers fn for change notifications. The returned func
// removes the subscription; calling it more than once is harmless.
func (s *Store) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
