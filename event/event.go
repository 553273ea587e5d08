package event

import (
	"time"

	"github.com/lixenwraith/termkit/input"
)

// Event is a typed, read-only view over one native event record.
// The set of implementations is closed; each carries the fields of
// exactly one Kind. Events are created fresh during classification
// and discarded after dispatch.
//
// kind() must be a value receiver so that the zero value of a
// payload type reports its kind without allocation.
type Event interface {
	// When returns the backend timestamp of the event
	When() time.Time

	kind() Kind
}

// QuitEvent signals a termination request.
type QuitEvent struct {
	Time time.Time
}

func (QuitEvent) kind() Kind { return KindQuit }
func (e QuitEvent) When() time.Time { return e.Time }

// WindowEvent signals a screen size change.
type WindowEvent struct {
	Time   time.Time
	Width  int
	Height int
}

func (WindowEvent) kind() Kind { return KindWindow }
func (e WindowEvent) When() time.Time { return e.Time }

// FocusEvent signals focus gained or lost.
type FocusEvent struct {
	Time    time.Time
	Focused bool
}

func (FocusEvent) kind() Kind { return KindFocus }
func (e FocusEvent) When() time.Time { return e.Time }

// KeyEvent signals a key press.
type KeyEvent struct {
	Time time.Time
	Key  input.Key
	Rune rune // Valid when Key is input.KeyRune
	Mod  input.Mod
	Name string // Backend's descriptive name, for diagnostics
}

func (KeyEvent) kind() Kind { return KindKeyDown }
func (e KeyEvent) When() time.Time { return e.Time }

// MouseButtonEvent signals a single button press or release.
type MouseButtonEvent struct {
	Time    time.Time
	X, Y    int
	Button  input.Button
	Pressed bool
	Mod     input.Mod
}

func (MouseButtonEvent) kind() Kind { return KindMouseButton }
func (e MouseButtonEvent) When() time.Time { return e.Time }

// MouseMotionEvent signals cursor movement. Buttons holds the mask
// of buttons held during the motion.
type MouseMotionEvent struct {
	Time    time.Time
	X, Y    int
	Buttons input.Button
	Mod     input.Mod
}

func (MouseMotionEvent) kind() Kind { return KindMouseMotion }
func (e MouseMotionEvent) When() time.Time { return e.Time }

// MouseWheelEvent signals wheel scrolling. DX/DY are signed step
// counts: positive DY scrolls up, positive DX scrolls right.
type MouseWheelEvent struct {
	Time   time.Time
	X, Y   int
	DX, DY int
	Mod    input.Mod
}

func (MouseWheelEvent) kind() Kind { return KindMouseWheel }
func (e MouseWheelEvent) When() time.Time { return e.Time }

// PasteEvent signals a bracketed paste boundary. Start is true at
// the opening boundary, false at the closing one.
type PasteEvent struct {
	Time  time.Time
	Start bool
}

func (PasteEvent) kind() Kind { return KindPaste }
func (e PasteEvent) When() time.Time { return e.Time }

// ErrorEvent carries an error reported by the backend.
type ErrorEvent struct {
	Time time.Time
	Err  error
}

func (ErrorEvent) kind() Kind { return KindError }
func (e ErrorEvent) When() time.Time { return e.Time }
