package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestWaveSine verifies sine wave generation
func TestWaveSine(t *testing.T) {
	rate := beep.SampleRate(44100)

	osc := NewWave(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Samples must stay within [-1, 1]
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] != samples[i][0] {
			t.Errorf("Sample %d channels differ", i)
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestWaveSquare verifies square waves only produce extremes
func TestWaveSquare(t *testing.T) {
	rate := beep.SampleRate(44100)

	osc := NewWave(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Sample %d not square: %f", i, samples[i][0])
		}
	}
}

// TestWaveExhaustion verifies the streamer ends after its duration
func TestWaveExhaustion(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 10 * time.Millisecond // 10 samples

	osc := NewWave(100.0, duration, WaveSaw, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if ok {
		t.Error("Expected ok=false once drained")
	}
	if n != 10 {
		t.Errorf("Expected 10 samples, got %d", n)
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained streamer, got n=%d ok=%v", n, ok)
	}
}

// TestWaveNoiseRange verifies noise stays in range
func TestWaveNoiseRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	osc := NewWave(0, 10*time.Millisecond, WaveNoise, rate)

	samples := make([][2]float64, 64)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}
