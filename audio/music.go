package audio

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// Music is a streamed track decoded from a file. One track owns its
// decoder: Close releases it, after which the track is unusable.
type Music struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	closed   bool
}

// LoadMusic opens and decodes a WAV, MP3, OGG, or FLAC file, picked
// by extension. The file stays open for streaming until Close.
func LoadMusic(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "audio: open music")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, errors.Errorf("audio: unsupported music format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "audio: decode %s", filepath.Base(path))
	}

	return &Music{streamer: streamer, format: format}, nil
}

// Play starts the track on the open speaker. A negative count loops
// forever; zero and one play the track once. Calling Play on a track
// that is already playing restarts it.
func (m *Music) Play(count int) error {
	if m.closed {
		return errors.New("audio: music closed")
	}
	if !Opened() {
		return ErrClosed
	}
	if count == 0 {
		count = 1
	}

	speaker.Lock()
	if m.ctrl != nil {
		// Detach the previous playback chain
		m.ctrl.Streamer = nil
	}
	if err := m.streamer.Seek(0); err != nil {
		speaker.Unlock()
		return errors.Wrap(err, "audio: rewind")
	}
	speaker.Unlock()

	var s beep.Streamer = beep.Loop(count, m.streamer)
	if sr := Rate(); m.format.SampleRate != sr {
		s = beep.Resample(4, m.format.SampleRate, sr, s)
	}

	m.volume = &effects.Volume{Streamer: s, Base: 2}
	m.ctrl = &beep.Ctrl{Streamer: m.volume}
	speaker.Play(m.ctrl)
	return nil
}

// Pause suspends playback, keeping the position.
func (m *Music) Pause() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues paused playback.
func (m *Music) Resume() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
}

// Paused reports whether playback is suspended.
func (m *Music) Paused() bool {
	if m.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return m.ctrl.Paused
}

// Stop halts playback. The track can be started again with Play.
func (m *Music) Stop() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Streamer = nil
	speaker.Unlock()
}

// Rewind seeks the track back to its start without stopping it.
func (m *Music) Rewind() error {
	if m.closed {
		return errors.New("audio: music closed")
	}
	speaker.Lock()
	err := m.streamer.Seek(0)
	speaker.Unlock()
	return errors.Wrap(err, "audio: rewind")
}

// SetVolume scales loudness: 0 silences, 1 is unity gain.
func (m *Music) SetVolume(v float64) {
	if m.volume == nil {
		return
	}
	speaker.Lock()
	if v <= 0 {
		m.volume.Silent = true
	} else {
		m.volume.Silent = false
		m.volume.Volume = math.Log2(v)
	}
	speaker.Unlock()
}

// Format returns the decoded stream's format.
func (m *Music) Format() beep.Format {
	return m.format
}

// Close stops playback and releases the decoder.
func (m *Music) Close() error {
	if m.closed {
		return nil
	}
	m.Stop()
	m.closed = true
	return m.streamer.Close()
}
