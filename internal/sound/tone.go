package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// oscillator streams a fixed-length waveform in both channels.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case Square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (o.phase - 0.5)
		case Noise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release.
type envelope struct {
	s                      beep.Streamer
	position               int
	attack, release, total int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales a stream linearly; zero or less is silence.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Note is one shaped oscillator voice.
type Note struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Gain    float64
}

func (n Note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(n.Freq, n.Length, n.Wave, rate)
	return gain(newEnvelope(osc, n.Length, n.Attack, n.Release, rate), n.Gain)
}

// Chord plays notes together.
func Chord(rate beep.SampleRate, notes ...Note) beep.Streamer {
	ss := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		ss[i] = n.streamer(rate)
	}
	return beep.Mix(ss...)
}

// Phrase plays notes one after another.
func Phrase(rate beep.SampleRate, notes ...Note) beep.Streamer {
	ss := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		ss[i] = n.streamer(rate)
	}
	return beep.Seq(ss...)
}
