package input

import "github.com/gdamore/tcell/v2"

// Button is a mouse button bitmask mirroring the backend's button
// bits. A single Button value identifies one button in press/release
// events; a combined mask reports held buttons in motion events.
type Button uint16

const (
	ButtonNone   Button = 0
	ButtonLeft   Button = 1 << 0
	ButtonRight  Button = 1 << 1
	ButtonMiddle Button = 1 << 2
	Button4      Button = 1 << 3
	Button5      Button = 1 << 4
	Button6      Button = 1 << 5
	Button7      Button = 1 << 6
	Button8      Button = 1 << 7
)

// buttonBits holds the backend's plain button bits, wheel bits excluded
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3 |
	tcell.Button4 | tcell.Button5 | tcell.Button6 |
	tcell.Button7 | tcell.Button8

// ButtonsFromNative converts a backend button mask to a Button mask,
// dropping wheel bits. The backend and Button use the same bit layout
// for the eight plain buttons.
func ButtonsFromNative(m tcell.ButtonMask) Button {
	return Button(m & buttonBits)
}

// Has reports whether all buttons in mask are set.
func (b Button) Has(mask Button) bool {
	return b&mask == mask
}

var buttonNames = map[Button]string{
	ButtonNone:   "None",
	ButtonLeft:   "Left",
	ButtonRight:  "Right",
	ButtonMiddle: "Middle",
	Button4:      "Button4",
	Button5:      "Button5",
	Button6:      "Button6",
	Button7:      "Button7",
	Button8:      "Button8",
}

// String returns the name of a single button value.
// Combined masks return "Multiple".
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "Multiple"
}
