// Demo wiring the dispatcher, screen, draw, and audio packages into
// a minimal interactive loop. Press keys to hear tones, drag the
// mouse to draw, Ctrl-C or Escape to quit.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/termkit/audio"
	"github.com/lixenwraith/termkit/draw"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/hints"
	"github.com/lixenwraith/termkit/input"
	"github.com/lixenwraith/termkit/screen"
)

const frameInterval = 16 * time.Millisecond

var (
	colorBg     = draw.Color{R: 26, G: 27, B: 38}
	colorBorder = draw.Color{R: 100, G: 150, B: 255}
	colorText   = draw.Color{R: 200, G: 200, B: 200}
	colorInk    = draw.Color{R: 255, G: 165, B: 0}
)

type demo struct {
	scr     *screen.Screen
	player  *audio.Player
	keys    *input.KeyState
	running bool
	status  string
	marks   map[[2]int]bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	scr, err := screen.New()
	if err != nil {
		return err
	}
	defer scr.Close()

	scr.SetTitle("termkit demo")
	scr.EnableMouse(screen.MouseClick | screen.MouseDrag)
	scr.EnablePaste()

	d := &demo{
		scr:     scr,
		keys:    input.NewKeyState(),
		running: true,
		status:  "ready",
		marks:   make(map[[2]int]bool),
	}

	if hints.AudioEnabled(true) {
		if err := audio.OpenDefault(); err != nil {
			// The demo runs fine without sound
			fmt.Fprintln(os.Stderr, "audio unavailable:", err)
		} else {
			defer audio.Close()
			d.player = audio.NewPlayer(4)
			if err := d.player.Start(); err != nil {
				d.player = nil
			}
		}
	}

	dispatcher, err := event.NewDispatcher(scr.Events(),
		event.KindQuit,
		event.KindWindow,
		event.KindKeyDown,
		event.KindMouseButton,
		event.KindMouseMotion,
	)
	if err != nil {
		return err
	}

	// Member function handlers
	event.Bind[event.QuitEvent](dispatcher).To(d.onQuit)
	event.Bind[event.WindowEvent](dispatcher).To(d.onWindow)

	// Closure handler
	event.Bind[event.KeyEvent](dispatcher).To(func(ev event.KeyEvent) error {
		d.keys.UpdateKey(ev.Key, ev.Rune, ev.Mod)
		switch ev.Key {
		case input.KeyEscape, input.KeyCtrlC:
			d.running = false
		case input.KeyRune:
			d.status = fmt.Sprintf("key %q", ev.Rune)
			d.beep(440 + float64(ev.Rune%26)*40)
		default:
			d.status = "key " + ev.Key.String()
		}
		return nil
	})

	// Free function handlers
	event.Bind[event.MouseButtonEvent](dispatcher).To(d.onMouseButton)
	event.Bind[event.MouseMotionEvent](dispatcher).To(d.onMouseMotion)

	for d.running {
		if err := dispatcher.Poll(); err != nil {
			return err
		}
		d.render()
		time.Sleep(frameInterval)
	}
	return nil
}

func (d *demo) onQuit(event.QuitEvent) error {
	d.running = false
	return nil
}

func (d *demo) onWindow(ev event.WindowEvent) error {
	d.status = fmt.Sprintf("resized to %dx%d", ev.Width, ev.Height)
	d.scr.Sync()
	return nil
}

func (d *demo) onMouseButton(ev event.MouseButtonEvent) error {
	d.keys.UpdateButton(ev.Button, ev.Pressed)
	d.keys.UpdatePosition(ev.X, ev.Y)
	if ev.Pressed {
		d.marks[[2]int{ev.X, ev.Y}] = true
		d.status = fmt.Sprintf("%v press at (%d,%d)", ev.Button, ev.X, ev.Y)
		d.beep(220)
	}
	return nil
}

func (d *demo) onMouseMotion(ev event.MouseMotionEvent) error {
	d.keys.UpdatePosition(ev.X, ev.Y)
	if ev.Buttons.Has(input.ButtonLeft) {
		d.marks[[2]int{ev.X, ev.Y}] = true
	}
	return nil
}

func (d *demo) beep(freq float64) {
	if d.player == nil {
		return
	}
	d.player.Tone(0, freq, 60*time.Millisecond)
}

func (d *demo) render() {
	w, h := d.scr.Size()
	bg := draw.DefaultStyle.WithBg(colorBg)

	draw.Fill(d.scr, 0, 0, w, h, ' ', bg)
	draw.Box(d.scr, 0, 0, w, h, bg.WithFg(colorBorder))

	for pos := range d.marks {
		d.scr.SetContent(pos[0], pos[1], '•', nil, bg.WithFg(colorInk).Native())
	}

	draw.Text(d.scr, 2, 0, " termkit demo ", bg.WithFg(colorText).WithAttrs(draw.AttrBold))
	draw.Text(d.scr, 2, h-1, " "+d.status+" ", bg.WithFg(colorText))

	d.scr.Show()
}
