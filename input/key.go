package input

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key, decoupled from the backend's
// key space. KeyRune indicates a printable character; check the
// event's Rune field for the actual character.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Often same as Backspace
	KeyCtrlI // Often same as Tab
	KeyCtrlJ // Often same as Enter
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Often same as Enter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketLeft
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModCtrl  Mod = 1 << 2
	ModMeta  Mod = 1 << 3
)

// nativeKeys maps backend key codes to Key values.
// tcell folds Ctrl+letter into dedicated key codes; runes arrive as
// tcell.KeyRune with the character in the event.
var nativeKeys = map[tcell.Key]Key{
	tcell.KeyRune:           KeyRune,
	tcell.KeyEscape:         KeyEscape,
	tcell.KeyEnter:          KeyEnter,
	tcell.KeyTab:            KeyTab,
	tcell.KeyBacktab:        KeyBacktab,
	tcell.KeyBackspace:      KeyBackspace,
	tcell.KeyBackspace2:     KeyBackspace,
	tcell.KeyDelete:         KeyDelete,
	tcell.KeyUp:             KeyUp,
	tcell.KeyDown:           KeyDown,
	tcell.KeyLeft:           KeyLeft,
	tcell.KeyRight:          KeyRight,
	tcell.KeyHome:           KeyHome,
	tcell.KeyEnd:            KeyEnd,
	tcell.KeyPgUp:           KeyPageUp,
	tcell.KeyPgDn:           KeyPageDown,
	tcell.KeyInsert:         KeyInsert,
	tcell.KeyF1:             KeyF1,
	tcell.KeyF2:             KeyF2,
	tcell.KeyF3:             KeyF3,
	tcell.KeyF4:             KeyF4,
	tcell.KeyF5:             KeyF5,
	tcell.KeyF6:             KeyF6,
	tcell.KeyF7:             KeyF7,
	tcell.KeyF8:             KeyF8,
	tcell.KeyF9:             KeyF9,
	tcell.KeyF10:            KeyF10,
	tcell.KeyF11:            KeyF11,
	tcell.KeyF12:            KeyF12,
	tcell.KeyCtrlA:          KeyCtrlA,
	tcell.KeyCtrlB:          KeyCtrlB,
	tcell.KeyCtrlC:          KeyCtrlC,
	tcell.KeyCtrlD:          KeyCtrlD,
	tcell.KeyCtrlE:          KeyCtrlE,
	tcell.KeyCtrlF:          KeyCtrlF,
	tcell.KeyCtrlG:          KeyCtrlG,
	tcell.KeyCtrlK:          KeyCtrlK,
	tcell.KeyCtrlL:          KeyCtrlL,
	tcell.KeyCtrlN:          KeyCtrlN,
	tcell.KeyCtrlO:          KeyCtrlO,
	tcell.KeyCtrlP:          KeyCtrlP,
	tcell.KeyCtrlQ:          KeyCtrlQ,
	tcell.KeyCtrlR:          KeyCtrlR,
	tcell.KeyCtrlS:          KeyCtrlS,
	tcell.KeyCtrlT:          KeyCtrlT,
	tcell.KeyCtrlU:          KeyCtrlU,
	tcell.KeyCtrlV:          KeyCtrlV,
	tcell.KeyCtrlW:          KeyCtrlW,
	tcell.KeyCtrlX:          KeyCtrlX,
	tcell.KeyCtrlY:          KeyCtrlY,
	tcell.KeyCtrlZ:          KeyCtrlZ,
	tcell.KeyCtrlSpace:      KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: KeyCtrlUnderscore,
}

// KeyFromNative converts a backend key code to a Key.
// A space rune is reported as KeySpace rather than KeyRune so it can
// be bound like a control key.
func KeyFromNative(k tcell.Key, r rune) Key {
	if k == tcell.KeyRune && r == ' ' {
		return KeySpace
	}
	if key, ok := nativeKeys[k]; ok {
		return key
	}
	return KeyNone
}

// ModFromNative converts a backend modifier mask to a Mod.
func ModFromNative(m tcell.ModMask) Mod {
	var mod Mod
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}
