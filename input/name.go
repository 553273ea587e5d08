package input

import "fmt"

var keyNames = map[Key]string{
	KeyNone:             "None",
	KeyRune:             "Rune",
	KeyEscape:           "Escape",
	KeyEnter:            "Enter",
	KeyTab:              "Tab",
	KeyBacktab:          "Backtab",
	KeyBackspace:        "Backspace",
	KeyDelete:           "Delete",
	KeySpace:            "Space",
	KeyUp:               "Up",
	KeyDown:             "Down",
	KeyLeft:             "Left",
	KeyRight:            "Right",
	KeyHome:             "Home",
	KeyEnd:              "End",
	KeyPageUp:           "PageUp",
	KeyPageDown:         "PageDown",
	KeyInsert:           "Insert",
	KeyCtrlSpace:        "Ctrl+Space",
	KeyCtrlBackslash:    "Ctrl+\\",
	KeyCtrlBracketLeft:  "Ctrl+[",
	KeyCtrlBracketRight: "Ctrl+]",
	KeyCtrlCaret:        "Ctrl+^",
	KeyCtrlUnderscore:   "Ctrl+_",
}

// String returns a human-readable key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return fmt.Sprintf("Ctrl+%c", rune('A'+int(k-KeyCtrlA)))
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// String returns the active modifier names joined with "+".
func (m Mod) String() string {
	if m == ModNone {
		return "None"
	}
	s := ""
	if m&ModCtrl != 0 {
		s += "Ctrl+"
	}
	if m&ModAlt != 0 {
		s += "Alt+"
	}
	if m&ModShift != 0 {
		s += "Shift+"
	}
	if m&ModMeta != 0 {
		s += "Meta+"
	}
	return s[:len(s)-1]
}
