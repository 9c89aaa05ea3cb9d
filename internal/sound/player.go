// Package sound plays short audio cues for wheel interaction.
package sound

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

const (
	SampleRate beep.SampleRate = 44100
	bufferSize                 = SampleRate / 20
)

var ErrUnsupported = errors.New("unsupported audio file")

// ring pitches, innermost lowest: A4, C#5, E5
var levelFreq = [...]float64{440, 554.37, 659.25}

// SelectTone is a bright two-voice ding pitched by ring.
func SelectTone(level wheel.Level) beep.Streamer {
	f := levelFreq[level]
	return Chord(SampleRate,
		Note{Freq: f, Wave: Sine, Length: 180 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 150 * time.Millisecond, Gain: 0.35},
		Note{Freq: 2 * f, Wave: Sine, Length: 180 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.12},
	)
}

// DeselectTone falls a fifth from the ring pitch.
func DeselectTone(level wheel.Level) beep.Streamer {
	f := levelFreq[level]
	return Phrase(SampleRate,
		Note{Freq: f, Wave: Sine, Length: 60 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 20 * time.Millisecond, Gain: 0.25},
		Note{Freq: f * 2 / 3, Wave: Sine, Length: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 70 * time.Millisecond, Gain: 0.25},
	)
}

// ResetSwoosh is soft noise for the reset unwind.
func ResetSwoosh() beep.Streamer {
	return Chord(SampleRate,
		Note{Wave: Noise, Length: 400 * time.Millisecond, Attack: 150 * time.Millisecond, Release: 250 * time.Millisecond, Gain: 0.08},
	)
}

// Player sends cues to the speaker. A player whose speaker failed to open
// stays usable and silent.
type Player struct {
	log   *slog.Logger
	ready bool
	muted bool
	chime *beep.Buffer
}

func NewPlayer(log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{log: log}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to report.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, int(bufferSize)); err != nil {
		p.log.Warn("audio disabled", "err", err)
		return fmt.Errorf("open speaker: %w", err)
	}
	p.ready = true
	return nil
}

func (p *Player) Ready() bool { return p.ready }
func (p *Player) Muted() bool { return p.muted }

func (p *Player) SetMuted(m bool) {
	p.muted = m
	if m && p.ready {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
}

func (p *Player) ToggleMute() bool {
	p.SetMuted(!p.muted)
	return p.muted
}

// Play queues a streamer unless the player is muted or silent.
func (p *Player) Play(s beep.Streamer) {
	if !p.ready || p.muted || s == nil {
		return
	}
	speaker.Play(s)
}

// Selection is a wheel.Engine subscriber.
func (p *Player) Selection(ev wheel.SelectionEvent) {
	if !ev.Selected {
		p.Play(DeselectTone(ev.Level))
		return
	}
	if p.chime != nil {
		p.Play(p.chime.Streamer(0, p.chime.Len()))
		return
	}
	p.Play(SelectTone(ev.Level))
}

// HasChime reports whether a custom selection sound is loaded.
func (p *Player) HasChime() bool { return p.chime != nil }

// LoadChime replaces the selection tone with an audio file.
func (p *Player) LoadChime(path string) error {
	buf, err := LoadSample(path)
	if err != nil {
		return err
	}
	p.chime = buf
	p.log.Info("chime loaded", "path", path, "samples", buf.Len())
	return nil
}

// LoadSample decodes a wav, mp3 or flac file into memory at SampleRate.
func LoadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, format, err = wav.Decode(f)
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".flac":
		s, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != SampleRate {
		src = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
