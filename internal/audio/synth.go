package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

// A waveFn maps a phase in [0, 1) to a sample in [-1, 1].
type waveFn func(phase float64) float64

func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func Saw(phase float64) float64 {
	return 2 * (phase - 0.5)
}

func Noise(phase float64) float64 {
	return rand.Float64()*2 - 1
}

type tone struct {
	wave    waveFn
	phase   float64
	step    float64
	pos     int
	length  int
	attack  int
	relFrom int
	relLen  int
}

// Tone renders a fixed length oscillator burst with a linear attack and
// release envelope.
func Tone(sr beep.SampleRate, wave waveFn, freq float64, d, attack, release time.Duration) beep.Streamer {
	length := sr.N(d)
	a := sr.N(attack)
	rel := sr.N(release)
	relFrom := length - rel
	if relFrom < a {
		relFrom = a
	}
	return &tone{
		wave:    wave,
		step:    freq / float64(sr),
		length:  length,
		attack:  a,
		relFrom: relFrom,
		relLen:  rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		v := t.wave(t.phase) * t.gain()
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.step
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error {
	return nil
}

func (t *tone) gain() float64 {
	if t.pos < t.attack && t.attack > 0 {
		return float64(t.pos) / float64(t.attack)
	}
	if t.pos >= t.relFrom && t.relLen > 0 {
		return float64(t.length-t.pos) / float64(t.relLen)
	}
	return 1
}
