package draw

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeSurface records drawn cells for assertions
type fakeSurface struct {
	w, h  int
	cells map[[2]int]rune
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (f *fakeSurface) SetContent(x, y int, r rune, comb []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func (f *fakeSurface) Size() (int, int) {
	return f.w, f.h
}

// TestTextPlacement verifies runes land on consecutive cells
func TestTextPlacement(t *testing.T) {
	s := newFakeSurface(20, 5)

	end := Text(s, 2, 1, "hey", DefaultStyle)
	if end != 5 {
		t.Errorf("Expected end position 5, got %d", end)
	}
	if s.cells[[2]int{2, 1}] != 'h' || s.cells[[2]int{3, 1}] != 'e' || s.cells[[2]int{4, 1}] != 'y' {
		t.Errorf("Unexpected cell contents: %v", s.cells)
	}
}

// TestTextWideRunes verifies wide runes advance two cells
func TestTextWideRunes(t *testing.T) {
	s := newFakeSurface(20, 5)

	end := Text(s, 0, 0, "日本", DefaultStyle)
	if end != 4 {
		t.Errorf("Expected end position 4, got %d", end)
	}
	if s.cells[[2]int{0, 0}] != '日' || s.cells[[2]int{2, 0}] != '本' {
		t.Errorf("Unexpected cell contents: %v", s.cells)
	}
}

// TestTextClipping verifies drawing stops at the surface edge
func TestTextClipping(t *testing.T) {
	s := newFakeSurface(4, 2)

	Text(s, 0, 0, "toolong", DefaultStyle)
	if _, drawn := s.cells[[2]int{4, 0}]; drawn {
		t.Error("Expected no cell beyond surface width")
	}
	if s.cells[[2]int{3, 0}] != 'l' {
		t.Errorf("Expected 'l' at column 3, got %q", s.cells[[2]int{3, 0}])
	}

	// Off-screen row draws nothing
	before := len(s.cells)
	Text(s, 0, 9, "x", DefaultStyle)
	if len(s.cells) != before {
		t.Error("Expected no cells drawn on off-screen row")
	}
}

// TestWidth verifies cell measurement
func TestWidth(t *testing.T) {
	if got := Width("abc"); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := Width("日本"); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}

// TestBox verifies corner and edge runes
func TestBox(t *testing.T) {
	s := newFakeSurface(10, 10)

	Box(s, 1, 1, 4, 3, DefaultStyle)
	if s.cells[[2]int{1, 1}] != '┌' || s.cells[[2]int{4, 1}] != '┐' {
		t.Errorf("Unexpected top corners: %v", s.cells)
	}
	if s.cells[[2]int{1, 3}] != '└' || s.cells[[2]int{4, 3}] != '┘' {
		t.Errorf("Unexpected bottom corners: %v", s.cells)
	}
	if s.cells[[2]int{2, 1}] != '─' || s.cells[[2]int{1, 2}] != '│' {
		t.Errorf("Unexpected edges: %v", s.cells)
	}

	// Degenerate boxes draw nothing
	before := len(s.cells)
	Box(s, 0, 0, 1, 5, DefaultStyle)
	if len(s.cells) != before {
		t.Error("Expected degenerate box to draw nothing")
	}
}

// TestStyleNative verifies attribute conversion
func TestStyleNative(t *testing.T) {
	st := DefaultStyle.WithFg(Color{255, 0, 0}).WithAttrs(AttrBold | AttrReverse)
	native := st.Native()

	fg, _, attrs := native.Decompose()
	if fg != (Color{255, 0, 0}).Native() {
		t.Errorf("Unexpected foreground: %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
	if attrs&tcell.AttrReverse == 0 {
		t.Error("Expected reverse attribute")
	}
}
