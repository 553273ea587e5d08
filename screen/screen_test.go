package screen

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/event"
)

// TestSimulationLifecycle verifies construct/close pairing
func TestSimulationLifecycle(t *testing.T) {
	s, sim, err := NewSimulation()
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	sim.SetSize(100, 30)
	w, h := s.Size()
	if w != 100 || h != 30 {
		t.Errorf("Expected 100x30, got %dx%d", w, h)
	}

	// Close is idempotent
	s.Close()
	s.Close()
}

// TestSetContent verifies drawing reaches the backend cells
func TestSetContent(t *testing.T) {
	s, sim, err := NewSimulation()
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	defer s.Close()

	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	s.SetContent(2, 1, 'A', nil, style)
	s.Show()

	cells, w, _ := sim.GetContents()
	cell := cells[1*w+2]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'A' {
		t.Errorf("Expected 'A' at (2,1), got %v", cell.Runes)
	}
}

// TestPostQuitDispatch verifies the injected interrupt reaches a
// dispatcher as a quit event
func TestPostQuitDispatch(t *testing.T) {
	s, _, err := NewSimulation()
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	defer s.Close()

	d, err := event.NewDispatcher(s.Events(), event.KindQuit)
	if err != nil {
		t.Fatalf("NewDispatcher failed: %v", err)
	}

	quit := false
	event.Bind[event.QuitEvent](d).To(func(event.QuitEvent) error {
		quit = true
		return nil
	})

	s.PostQuit()

	// The backend delivers asynchronously; poll until seen
	for i := 0; i < 100 && !quit; i++ {
		if err := d.Poll(); err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if !quit {
		t.Error("Expected quit handler invocation")
	}
}
