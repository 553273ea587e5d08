package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the drawing target: satisfied by screen.Screen and any
// backend screen.
type Surface interface {
	SetContent(x, y int, r rune, comb []rune, style tcell.Style)
	Size() (width, height int)
}

// Width returns the number of cells the string occupies, accounting
// for wide (CJK) runes.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Text draws a string at (x, y), advancing by each rune's cell width.
// Returns the x position after the last cell drawn. Drawing is
// clipped at the surface edge.
func Text(s Surface, x, y int, text string, style Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	st := style.Native()
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, st)
		}
		x += rw
	}
	return x
}

// Box border runes
const (
	runeHLine       = '─'
	runeVLine       = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
)

// Box draws a single-line border around the rectangle at (x, y) with
// the given outer dimensions. Boxes smaller than 2x2 are ignored.
func Box(s Surface, x, y, width, height int, style Style) {
	if width < 2 || height < 2 {
		return
	}
	st := style.Native()

	s.SetContent(x, y, runeTopLeft, nil, st)
	s.SetContent(x+width-1, y, runeTopRight, nil, st)
	s.SetContent(x, y+height-1, runeBottomLeft, nil, st)
	s.SetContent(x+width-1, y+height-1, runeBottomRight, nil, st)

	for cx := x + 1; cx < x+width-1; cx++ {
		s.SetContent(cx, y, runeHLine, nil, st)
		s.SetContent(cx, y+height-1, runeHLine, nil, st)
	}
	for cy := y + 1; cy < y+height-1; cy++ {
		s.SetContent(x, cy, runeVLine, nil, st)
		s.SetContent(x+width-1, cy, runeVLine, nil, st)
	}
}

// Fill floods the rectangle with the given rune.
func Fill(s Surface, x, y, width, height int, r rune, style Style) {
	st := style.Native()
	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			s.SetContent(cx, cy, r, nil, st)
		}
	}
}
