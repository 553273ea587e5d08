package draw

import "github.com/gdamore/tcell/v2"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Style pairs foreground and background colors with attributes.
// The zero value is white on black with no attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultStyle is white on black.
var DefaultStyle = Style{Fg: White, Bg: Black}

// WithFg returns a copy with the foreground replaced.
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy with the background replaced.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithAttrs returns a copy with the given attributes added.
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs |= a
	return s
}

// Native converts to a backend style.
func (s Style) Native() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(s.Fg.Native()).
		Background(s.Bg.Native())
	if s.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
