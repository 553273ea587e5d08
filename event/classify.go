package event

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/input"
)

// classifier maps raw backend events to typed views. The mapping is
// total and injective: every raw record resolves to at most one Kind,
// and no two Kinds claim the same record shape.
//
// Mouse records need sub-discrimination: the backend reports the set
// of held buttons per record, so press/release is recovered by
// diffing against the previous mask. Wheel bits always classify the
// record as a wheel event.
type classifier struct {
	buttons tcell.ButtonMask // Held buttons after the previous mouse record
}

// classify produces the typed view for one raw event.
// Returns false for record shapes outside the taxonomy; those events
// are dropped by the poll loop, by design.
func (c *classifier) classify(raw tcell.Event) (Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventInterrupt:
		return QuitEvent{Time: ev.When()}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return WindowEvent{Time: ev.When(), Width: w, Height: h}, true

	case *tcell.EventFocus:
		return FocusEvent{Time: ev.When(), Focused: ev.Focused}, true

	case *tcell.EventKey:
		return KeyEvent{
			Time: ev.When(),
			Key:  input.KeyFromNative(ev.Key(), ev.Rune()),
			Rune: ev.Rune(),
			Mod:  input.ModFromNative(ev.Modifiers()),
			Name: ev.Name(),
		}, true

	case *tcell.EventMouse:
		return c.classifyMouse(ev), true

	case *tcell.EventPaste:
		return PasteEvent{Time: ev.When(), Start: ev.Start()}, true

	case *tcell.EventError:
		return ErrorEvent{Time: ev.When(), Err: ev}, true
	}

	return nil, false
}

const wheelBits = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// classifyMouse resolves one mouse record into exactly one of wheel,
// button, or motion.
func (c *classifier) classifyMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btns := ev.Buttons()
	mod := input.ModFromNative(ev.Modifiers())

	if wheel := btns & wheelBits; wheel != 0 {
		var dx, dy int
		if wheel&tcell.WheelUp != 0 {
			dy++
		}
		if wheel&tcell.WheelDown != 0 {
			dy--
		}
		if wheel&tcell.WheelRight != 0 {
			dx++
		}
		if wheel&tcell.WheelLeft != 0 {
			dx--
		}
		return MouseWheelEvent{Time: ev.When(), X: x, Y: y, DX: dx, DY: dy, Mod: mod}
	}

	held := btns &^ wheelBits
	changed := held ^ c.buttons
	if changed != 0 {
		c.buttons = held
		// Lowest changed bit wins; the backend reports one
		// transition per record in practice
		bit := changed & -changed
		return MouseButtonEvent{
			Time:    ev.When(),
			X:       x,
			Y:       y,
			Button:  input.ButtonsFromNative(bit),
			Pressed: held&bit != 0,
			Mod:     mod,
		}
	}

	return MouseMotionEvent{
		Time:    ev.When(),
		X:       x,
		Y:       y,
		Buttons: input.ButtonsFromNative(held),
		Mod:     mod,
	}
}
