package event

import "github.com/gdamore/tcell/v2"

// Source supplies raw backend events to a Dispatcher. PollEvent must
// not block: it returns false when no event is immediately available.
type Source interface {
	PollEvent() (tcell.Event, bool)
}

// ScreenSource adapts a backend screen's event queue to the Source
// contract.
type ScreenSource struct {
	screen tcell.Screen
}

// NewScreenSource wraps the given screen.
func NewScreenSource(s tcell.Screen) *ScreenSource {
	return &ScreenSource{screen: s}
}

// PollEvent pops one pending event without blocking.
// Returns false when the queue is empty or the screen is finalized.
func (s *ScreenSource) PollEvent() (tcell.Event, bool) {
	if !s.screen.HasPendingEvent() {
		return nil, false
	}
	ev := s.screen.PollEvent()
	if ev == nil {
		return nil, false
	}
	return ev, true
}
