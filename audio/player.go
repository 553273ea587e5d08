package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player mixes short effects over a fixed set of channels, one sound
// per channel at a time. Starting a sound on a busy channel halts
// whatever it was playing.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	channels []*channel
	started  bool
}

type channel struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
	gain float64
}

// NewPlayer creates a player with the given number of channels.
func NewPlayer(numChannels int) *Player {
	if numChannels < 1 {
		numChannels = 1
	}
	p := &Player{
		mixer:    &beep.Mixer{},
		channels: make([]*channel, numChannels),
	}
	for i := range p.channels {
		p.channels[i] = &channel{gain: 1}
	}
	return p
}

// Start attaches the player's mixer to the open speaker.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if !Opened() {
		return ErrClosed
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// PlayOn starts s on the given channel, halting its current sound.
func (p *Player) PlayOn(ch int, s beep.Streamer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return errors.New("audio: player not started")
	}
	if ch < 0 || ch >= len(p.channels) {
		return errors.Errorf("audio: channel %d out of range", ch)
	}

	c := p.channels[ch]
	speaker.Lock()
	if c.ctrl != nil {
		c.ctrl.Streamer = nil // Mixer drops the drained chain
	}
	c.vol = &effects.Volume{Streamer: s, Base: 2}
	applyGain(c.vol, c.gain)
	c.ctrl = &beep.Ctrl{Streamer: c.vol}
	p.mixer.Add(c.ctrl)
	speaker.Unlock()
	return nil
}

// Halt silences the given channel.
func (p *Player) Halt(ch int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ch < 0 || ch >= len(p.channels) {
		return
	}
	c := p.channels[ch]
	if c.ctrl == nil {
		return
	}
	speaker.Lock()
	c.ctrl.Streamer = nil
	speaker.Unlock()
	c.ctrl = nil
	c.vol = nil
}

// HaltAll silences every channel.
func (p *Player) HaltAll() {
	for ch := range p.channels {
		p.Halt(ch)
	}
}

// Pause suspends or resumes one channel.
func (p *Player) Pause(ch int, paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ch < 0 || ch >= len(p.channels) {
		return
	}
	c := p.channels[ch]
	if c.ctrl == nil {
		return
	}
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume scales one channel's loudness: 0 silences, 1 is unity.
// The gain persists across sounds played on the channel.
func (p *Player) SetVolume(ch int, v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ch < 0 || ch >= len(p.channels) {
		return
	}
	c := p.channels[ch]
	c.gain = v
	if c.vol == nil {
		return
	}
	speaker.Lock()
	applyGain(c.vol, v)
	speaker.Unlock()
}

// Channels returns the channel count.
func (p *Player) Channels() int {
	return len(p.channels)
}

// Tone plays a sine tone on the given channel.
func (p *Player) Tone(ch int, freq float64, d time.Duration) error {
	sr := Rate()
	if sr == 0 {
		return ErrClosed
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return errors.Wrap(err, "audio: tone")
	}
	return p.PlayOn(ch, beep.Take(sr.N(d), sine))
}

// PlayWave plays a synthesized wave shape on the given channel.
func (p *Player) PlayWave(ch int, wave WaveType, freq float64, d time.Duration) error {
	sr := Rate()
	if sr == 0 {
		return ErrClosed
	}
	return p.PlayOn(ch, NewWave(freq, d, wave, sr))
}

func applyGain(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Silent = true
		return
	}
	vol.Silent = false
	vol.Volume = math.Log2(v)
}
