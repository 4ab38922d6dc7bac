package audio

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

const defaultSampleRate = beep.SampleRate(44100)

type Player struct {
	sr      beep.SampleRate
	track   beep.StreamSeekCloser
	enabled bool
	paused  bool
	started bool
}

// Open readies the speaker and decodes the track if one is given.
// An empty path means synthesized cues only.
func Open(trackPath string) (*Player, error) {
	p := &Player{sr: defaultSampleRate, enabled: true}
	if trackPath != "" {
		f, err := os.Open(trackPath)
		if nil != err {
			return nil, fmt.Errorf("unable to open track: %w", err)
		}
		var streamer beep.StreamSeekCloser
		var format beep.Format
		switch path.Ext(trackPath) {
		case ".ogg":
			streamer, format, err = vorbis.Decode(f)
		case ".mp3":
			streamer, format, err = mp3.Decode(f)
		default:
			f.Close()
			return nil, fmt.Errorf("unsupported track format %q", path.Ext(trackPath))
		}
		if nil != err {
			return nil, fmt.Errorf("unable to decode track: %w", err)
		}
		p.track = streamer
		p.sr = format.SampleRate
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/60)); nil != err {
		return nil, fmt.Errorf("unable to init speaker: %w", err)
	}
	return p, nil
}

// Muted returns a player whose methods do nothing.
func Muted() *Player {
	return &Player{sr: defaultSampleRate}
}

func (p *Player) HasTrack() bool {
	return nil != p.track
}

// Start plays the track once the clock reaches the lead-in, so the
// first beat lands on the hit line together with the first note. Safe
// to call every frame; the track joins the speaker once per run.
func (p *Player) Start(clock, leadIn time.Duration) {
	if p.started || clock < leadIn || nil == p.track || !p.active() {
		return
	}
	p.started = true
	speaker.Play(p.track)
}

// Rewind silences everything and arms the track to start over.
func (p *Player) Rewind() {
	if !p.enabled {
		return
	}
	p.SetPaused(false)
	speaker.Clear()
	p.started = false
	if nil == p.track {
		return
	}
	if err := p.track.Seek(0); nil != err {
		// a track that will not seek cannot be replayed
		p.track = nil
	}
}

// SetPaused suspends or resumes the speaker. The speaker stays locked
// for the whole pause, so no cue may be played until resume.
func (p *Player) SetPaused(paused bool) {
	if !p.enabled || paused == p.paused {
		return
	}
	p.paused = paused
	if paused {
		speaker.Lock()
	} else {
		speaker.Unlock()
	}
}

func (p *Player) Close() {
	if nil != p.track {
		p.track.Close()
	}
}

// Hit plays the cue for a judged press, brighter for narrower windows.
func (p *Player) Hit(index int) {
	if !p.active() {
		return
	}
	var cue beep.Streamer
	if index == 0 {
		// A5 with an octave overtone
		cue = beep.Mix(
			Tone(p.sr, Sine, 880, 90*time.Millisecond, 2*time.Millisecond, 70*time.Millisecond),
			quieter(Tone(p.sr, Sine, 1760, 90*time.Millisecond, 2*time.Millisecond, 70*time.Millisecond), -1.2),
		)
	} else {
		// E5
		cue = Tone(p.sr, Sine, 659.25, 60*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond)
	}
	speaker.Play(quieter(cue, -1))
}

// Miss plays a low buzz.
func (p *Player) Miss() {
	if !p.active() {
		return
	}
	cue := Tone(p.sr, Saw, 100, 150*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond)
	speaker.Play(quieter(cue, -1))
}

// Tick plays a metronome click, accented on the downbeat.
func (p *Player) Tick(downbeat bool) {
	if !p.active() {
		return
	}
	freq, d := 880.0, 25*time.Millisecond
	if downbeat {
		freq, d = 1760.0, 35*time.Millisecond
	}
	speaker.Play(quieter(Tone(p.sr, Square, freq, d, time.Millisecond, 15*time.Millisecond), -2))
}

// Over plays a short walk down.
func (p *Player) Over() {
	if !p.active() {
		return
	}
	// A4, F4, D4
	cue := beep.Seq(
		Tone(p.sr, Square, 440, 160*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond),
		Tone(p.sr, Square, 349.23, 160*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond),
		Tone(p.sr, Square, 293.66, 300*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond),
	)
	speaker.Play(quieter(cue, -1))
}

func (p *Player) active() bool {
	return p.enabled && !p.paused
}

func quieter(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
