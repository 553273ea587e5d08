package draw

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestFromHex verifies hex parsing
func TestFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", Color{255, 128, 0}, false},
		{"1a1b26", Color{26, 27, 38}, false},
		{"#FFFFFF", Color{255, 255, 255}, false},
		{"#fff", Color{}, true},
		{"nothex", Color{}, true},
	}

	for _, tt := range tests {
		got, err := FromHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

// TestHexRoundTrip verifies formatting matches parsing
func TestHexRoundTrip(t *testing.T) {
	c := Color{26, 27, 38}
	got, err := FromHex(c.Hex())
	if err != nil {
		t.Fatalf("Round trip parse failed: %v", err)
	}
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

// TestNativeRoundTrip verifies backend color conversion
func TestNativeRoundTrip(t *testing.T) {
	c := Color{200, 100, 50}
	if got := FromNative(c.Native()); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}

	if got := FromNative(tcell.ColorDefault); got != Black {
		t.Errorf("Expected default to map to black, got %v", got)
	}
}

// TestBlendEndpoints verifies t=0 and t=1 return the endpoints
func TestBlendEndpoints(t *testing.T) {
	a := Color{255, 0, 0}
	b := Color{0, 0, 255}

	if got := a.Blend(b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := a.Blend(b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}

	mid := a.Blend(b, 0.5)
	if mid == a || mid == b {
		t.Errorf("Expected midpoint distinct from endpoints, got %v", mid)
	}
}

// TestLightenDarken verifies lightness moves in the right direction
func TestLightenDarken(t *testing.T) {
	c := Color{100, 100, 100}

	lighter := c.Lighten(0.2)
	if lighter.R <= c.R {
		t.Errorf("Expected lighter color, got %v", lighter)
	}

	darker := c.Darken(0.2)
	if darker.R >= c.R {
		t.Errorf("Expected darker color, got %v", darker)
	}

	// Saturating at the ends does not wrap
	if got := White.Lighten(0.5); got != White {
		t.Errorf("Expected white to stay white, got %v", got)
	}
	if got := Black.Darken(0.5); got != Black {
		t.Errorf("Expected black to stay black, got %v", got)
	}
}

// TestAddScale verifies the clamped channel operations
func TestAddScale(t *testing.T) {
	c := Color{200, 200, 200}
	sum := c.Add(Color{100, 10, 0})
	if sum != (Color{255, 210, 200}) {
		t.Errorf("Expected clamped add, got %v", sum)
	}

	if got := c.Scale(0.5); got != (Color{100, 100, 100}) {
		t.Errorf("Expected half scale, got %v", got)
	}
	if got := c.Scale(0); got != Black {
		t.Errorf("Expected black at factor 0, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Expected unchanged at factor >= 1, got %v", got)
	}
}
