package input

// KeyState tracks the most recent keyboard input and held mouse
// buttons. It is a plain accumulator: feed it from event handlers on
// the polling thread, query it from the same thread.
type KeyState struct {
	lastKey  Key
	lastRune rune
	mods     Mod
	buttons  Button
	mouseX   int
	mouseY   int
}

// NewKeyState creates an empty tracker.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// UpdateKey records a key press.
func (s *KeyState) UpdateKey(k Key, r rune, m Mod) {
	s.lastKey = k
	s.lastRune = r
	s.mods = m
}

// UpdateButton records a button press or release.
func (s *KeyState) UpdateButton(b Button, pressed bool) {
	if pressed {
		s.buttons |= b
	} else {
		s.buttons &^= b
	}
}

// UpdatePosition records the mouse position.
func (s *KeyState) UpdatePosition(x, y int) {
	s.mouseX = x
	s.mouseY = y
}

// LastKey returns the most recent key and rune.
func (s *KeyState) LastKey() (Key, rune) {
	return s.lastKey, s.lastRune
}

// Mods returns the modifiers of the most recent key press.
func (s *KeyState) Mods() Mod {
	return s.mods
}

// Buttons returns the currently held mouse buttons.
func (s *KeyState) Buttons() Button {
	return s.buttons
}

// Position returns the last reported mouse position.
func (s *KeyState) Position() (x, y int) {
	return s.mouseX, s.mouseY
}
