package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termkit/hints"
)

// DefaultSampleRate matches common terminal hardware mixers.
const DefaultSampleRate = beep.SampleRate(48000)

// DefaultBuffer trades latency against underruns.
const DefaultBuffer = 100 * time.Millisecond

var (
	mu     sync.Mutex
	opened bool
	rate   beep.SampleRate
)

// Open initializes the process-wide speaker. Only the first call
// does work; the speaker stays open until Close.
func Open(sr beep.SampleRate, buffer time.Duration) error {
	mu.Lock()
	defer mu.Unlock()

	if opened {
		return nil
	}
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}
	opened = true
	rate = sr
	return nil
}

// OpenDefault opens the speaker with the hinted sample rate, falling
// back to DefaultSampleRate.
func OpenDefault() error {
	sr := beep.SampleRate(hints.SampleRate(int(DefaultSampleRate)))
	return Open(sr, DefaultBuffer)
}

// Close releases the speaker. Safe to call when not open.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		return
	}
	speaker.Clear()
	speaker.Close()
	opened = false
}

// Rate returns the open speaker's sample rate, or zero when closed.
func Rate() beep.SampleRate {
	mu.Lock()
	defer mu.Unlock()
	if !opened {
		return 0
	}
	return rate
}

// Opened reports whether the speaker is initialized.
func Opened() bool {
	mu.Lock()
	defer mu.Unlock()
	return opened
}

// ErrClosed is returned by playback operations before Open.
var ErrClosed = errors.New("audio: speaker not open")
