package event

// Kind identifies which payload shape an event carries. The set of
// kinds is closed: it mirrors the backend's event taxonomy and cannot
// grow at runtime.
type Kind uint8

const (
	// KindQuit signals a termination request (backend interrupt)
	KindQuit Kind = iota + 1

	// KindWindow signals a size change of the backing screen
	KindWindow

	// KindFocus signals focus gained or lost
	KindFocus

	// KindKeyDown signals a key press. The backend does not report
	// key releases
	KindKeyDown

	// KindMouseButton signals a single button press or release
	KindMouseButton

	// KindMouseMotion signals cursor movement, with held buttons
	KindMouseMotion

	// KindMouseWheel signals wheel scrolling
	KindMouseWheel

	// KindPaste signals a bracketed paste boundary
	KindPaste

	// KindError signals an error reported by the backend
	KindError

	kindCount
)

var kindNames = map[Kind]string{
	KindQuit:        "Quit",
	KindWindow:      "Window",
	KindFocus:       "Focus",
	KindKeyDown:     "KeyDown",
	KindMouseButton: "MouseButton",
	KindMouseMotion: "MouseMotion",
	KindMouseWheel:  "MouseWheel",
	KindPaste:       "Paste",
	KindError:       "Error",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// valid reports whether k is a member of the closed kind set.
func (k Kind) valid() bool {
	return k >= KindQuit && k < kindCount
}
