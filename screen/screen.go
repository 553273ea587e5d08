package screen

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/event"
)

// MouseMode selects which mouse events the backend reports.
// Modes can be combined: MouseClick | MouseDrag
type MouseMode int

const (
	MouseNone   MouseMode = 0
	MouseClick  MouseMode = 1 << 0
	MouseDrag   MouseMode = 1 << 1
	MouseMotion MouseMode = 1 << 2
)

// Screen owns one backend screen: created in New, released in Close.
// All drawing and event access goes through the wrapper; Native is
// the escape hatch for backend calls the wrapper does not surface.
type Screen struct {
	tc tcell.Screen

	mu     sync.Mutex
	closed bool
}

// New allocates and initializes a backend screen. On error nothing
// is left to clean up.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: create: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("screen: init: %w", err)
	}
	return &Screen{tc: tc}, nil
}

// NewSimulation creates a screen over an in-memory simulation
// backend, for tests. The returned simulation handle injects input
// and inspects cell contents.
func NewSimulation() (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, fmt.Errorf("screen: simulation init: %w", err)
	}
	return &Screen{tc: sim}, sim, nil
}

// Close restores the terminal. Safe to call multiple times.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.tc.Fini()
}

// Size returns the current screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// SetContent places one rune with optional combining characters.
func (s *Screen) SetContent(x, y int, r rune, comb []rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, comb, style)
}

// Clear erases the screen with the default style.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Fill floods the screen with the given rune and style.
func (s *Screen) Fill(r rune, style tcell.Style) {
	s.tc.Fill(r, style)
}

// SetStyle sets the default style used by Clear.
func (s *Screen) SetStyle(style tcell.Style) {
	s.tc.SetStyle(style)
}

// Show pushes pending updates to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// Sync forces a full repaint.
func (s *Screen) Sync() {
	s.tc.Sync()
}

// ShowCursor places the text cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.tc.ShowCursor(x, y)
}

// HideCursor removes the text cursor.
func (s *Screen) HideCursor() {
	s.tc.HideCursor()
}

// SetTitle sets the window title where the terminal supports it.
func (s *Screen) SetTitle(title string) {
	s.tc.SetTitle(title)
}

// EnableMouse turns on mouse reporting for the given mode.
// MouseNone disables reporting.
func (s *Screen) EnableMouse(mode MouseMode) {
	if mode == MouseNone {
		s.tc.DisableMouse()
		return
	}
	var flags tcell.MouseFlags
	if mode&MouseClick != 0 {
		flags |= tcell.MouseButtonEvents
	}
	if mode&MouseDrag != 0 {
		flags |= tcell.MouseDragEvents
	}
	if mode&MouseMotion != 0 {
		flags |= tcell.MouseMotionEvents
	}
	s.tc.EnableMouse(flags)
}

// EnablePaste turns on bracketed paste reporting.
func (s *Screen) EnablePaste() {
	s.tc.EnablePaste()
}

// EnableFocus turns on focus change reporting.
func (s *Screen) EnableFocus() {
	s.tc.EnableFocus()
}

// Beep sounds the terminal bell.
func (s *Screen) Beep() error {
	return s.tc.Beep()
}

// Suspend restores the terminal temporarily, for shelling out.
func (s *Screen) Suspend() error {
	return s.tc.Suspend()
}

// Resume re-enters the screen after Suspend.
func (s *Screen) Resume() error {
	return s.tc.Resume()
}

// Colors returns the number of colors the terminal supports, or a
// negative value for true color.
func (s *Screen) Colors() int {
	return s.tc.Colors()
}

// PostQuit injects the backend interrupt record, which classifies as
// a quit event. Safe to call from any goroutine.
func (s *Screen) PostQuit() {
	s.tc.PostEvent(tcell.NewEventInterrupt(nil))
}

// Events returns an event source draining this screen's queue.
func (s *Screen) Events() event.Source {
	return event.NewScreenSource(s.tc)
}

// Native exposes the underlying backend screen.
func (s *Screen) Native() tcell.Screen {
	return s.tc
}
