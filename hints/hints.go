// Package hints exposes typed accessors for the environment
// variables the backend and this library honor. Hints are plain
// process environment: set them before constructing the screen or
// opening the speaker, since both read their hints at setup time.
package hints

import (
	"os"
	"strconv"
)

// Hint names the environment variable behind a typed accessor.
type Hint string

const (
	// HintTerm selects the terminal database entry (backend)
	HintTerm Hint = "TERM"

	// HintColorTerm advertises true-color support (backend)
	HintColorTerm Hint = "COLORTERM"

	// HintTrueColor set to "disable" turns off true-color output
	// even when the terminal advertises it (backend)
	HintTrueColor Hint = "TCELL_TRUECOLOR"

	// HintAudioEnabled toggles audio playback (this library)
	HintAudioEnabled Hint = "TERMKIT_AUDIO_ENABLED"

	// HintMasterVolume sets master volume 0-100 (this library)
	HintMasterVolume Hint = "TERMKIT_MASTER_VOLUME"

	// HintSampleRate overrides the speaker sample rate (this library)
	HintSampleRate Hint = "TERMKIT_SAMPLE_RATE"
)

// String returns the hint's raw value, or def when unset.
func String(h Hint, def string) string {
	if v := os.Getenv(string(h)); v != "" {
		return v
	}
	return def
}

// Bool parses the hint as a boolean, or returns def when unset or
// unparseable.
func Bool(h Hint, def bool) bool {
	v := os.Getenv(string(h))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Int parses the hint as an integer, or returns def when unset or
// unparseable.
func Int(h Hint, def int) int {
	v := os.Getenv(string(h))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Set writes a hint value for the rest of the process.
func Set(h Hint, value string) error {
	return os.Setenv(string(h), value)
}

// Unset removes a hint.
func Unset(h Hint) error {
	return os.Unsetenv(string(h))
}

// TrueColorDisabled reports whether true-color output is forced off.
func TrueColorDisabled() bool {
	return String(HintTrueColor, "") == "disable"
}

// SetTrueColor forces true-color output on or off for the backend.
func SetTrueColor(enabled bool) error {
	if enabled {
		return Unset(HintTrueColor)
	}
	return Set(HintTrueColor, "disable")
}

// AudioEnabled reports whether audio playback is wanted.
func AudioEnabled(def bool) bool {
	return Bool(HintAudioEnabled, def)
}

// MasterVolume returns the hinted master volume scaled to 0.0-1.0.
// Values outside 0-100 are clamped.
func MasterVolume(def float64) float64 {
	v := os.Getenv(string(HintMasterVolume))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	vol := float64(n) / 100.0
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	return vol
}

// SampleRate returns the hinted speaker sample rate, or def when
// unset or not a positive number.
func SampleRate(def int) int {
	n := Int(HintSampleRate, def)
	if n <= 0 {
		return def
	}
	return n
}
