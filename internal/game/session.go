package game

import (
	"math"
	"time"
)

type State int

const (
	Running State = iota
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Over:
		return "game over"
	}
	return "running"
}

// PressResult reports what a lane press connected with. A nil Note
// means nothing was inside the press tolerance and nothing changed.
type PressResult struct {
	Note      *Note
	Judgement *Judgement
	Index     int     // Index of the judgement in the ladder
	Distance  float64 // Absolute distance to the hit line, in position units
}

// NoteView pairs a pending note with its field position at the time of
// the query.
type NoteView struct {
	Note     *Note
	Position float64
}

// Session owns the live state of one run: the clock, the note statuses
// and every counter derived from them. Advance and Press are the only
// mutators besides SetPaused and Restart, and all of them must be
// called from the same goroutine.
type Session struct {
	cfg    Config
	source func() *Chart

	chart *Chart
	clock time.Duration
	state State

	score      int64
	combo      int
	maxCombo   int
	missStreak int
	misses     int
	counts     []int // Hits per judgement window

	swept int // Notes before this index are all hit or missed
}

// NewSession generates a chart from the source and starts the clock at
// zero. The source is kept for restarts.
func NewSession(cfg Config, source func() *Chart) *Session {
	s := &Session{cfg: cfg, source: source}
	s.Restart()
	return s
}

// Restart throws the current run away and begins again on a freshly
// generated chart. Valid from any state.
func (s *Session) Restart() {
	s.chart = s.source()
	s.clock = 0
	s.state = Running
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
	s.missStreak = 0
	s.misses = 0
	s.counts = make([]int, len(s.cfg.Judgements))
	s.swept = 0
}

// Position is how far a note has fallen, in the same units as the hit
// and miss lines. Negative until the note enters the field.
func (s *Session) Position(n *Note) float64 {
	ms := float64(s.clock-n.Time) / float64(time.Millisecond)
	return ms * s.cfg.Speed / s.cfg.FrameUnit
}

// Advance moves the clock by the measured time since the previous
// frame, then sweeps overdue notes into Missed. A no-op unless
// running.
func (s *Session) Advance(delta time.Duration) {
	if s.state != Running {
		return
	}
	if delta < 0 {
		delta = 0
	}
	s.clock += delta

	// Sweep in spawn order. Notes past the cursor are younger and sit
	// higher up the field, so the first one still above the miss line
	// ends the walk.
	for s.swept < len(s.chart.Notes) {
		note := s.chart.Notes[s.swept]
		if note.Status != Pending {
			s.swept++
			continue
		}
		if s.Position(note) <= s.cfg.MissLine {
			break
		}
		note.Status = Missed
		s.swept++
		s.combo = 0
		s.misses++
		s.missStreak++
		if s.missStreak >= s.cfg.FailThreshold {
			s.state = Over
			break
		}
	}
}

// Press resolves a lane press against the closest pending note in that
// lane. Outside the running state, or with no note inside the widest
// judgement window, it changes nothing.
func (s *Session) Press(lane int) PressResult {
	if s.state != Running || lane < 0 || lane >= s.cfg.Lanes {
		return PressResult{Index: -1}
	}

	var closest *Note
	distance := math.MaxFloat64
	for _, note := range s.chart.Notes[s.swept:] {
		if note.Status != Pending || note.Lane != lane {
			continue
		}
		d := math.Abs(s.Position(note) - s.cfg.HitLine)
		if d < distance {
			distance = d
			closest = note
		} else if nil != closest {
			// already found the closest, every d from here grows
			break
		}
	}
	index, judgement := Judge(distance, s.cfg.Judgements)
	if nil == closest || nil == judgement {
		return PressResult{Index: -1}
	}

	closest.Status = Hit
	closest.HitOffset = s.clock - closest.Time - s.cfg.TravelTime()
	s.score += judgement.Points
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
	s.missStreak = 0
	s.counts[index]++
	return PressResult{Note: closest, Judgement: judgement, Index: index, Distance: distance}
}

// SetPaused freezes or resumes the clock. Ignored once the run is
// over.
func (s *Session) SetPaused(paused bool) {
	switch {
	case paused && s.state == Running:
		s.state = Paused
	case !paused && s.state == Paused:
		s.state = Running
	}
}

// VisibleNotes recomputes the pending notes inside the visible band.
// The slice is fresh on every call and safe to range while pressing.
func (s *Session) VisibleNotes() []NoteView {
	views := make([]NoteView, 0, 32)
	for _, note := range s.chart.Notes[s.swept:] {
		if note.Status != Pending {
			continue
		}
		p := s.Position(note)
		if p <= s.cfg.VisibleMin {
			break
		}
		if p >= s.cfg.VisibleMax {
			continue
		}
		views = append(views, NoteView{Note: note, Position: p})
	}
	return views
}

// Finished reports whether every note has been resolved.
func (s *Session) Finished() bool {
	return s.swept == len(s.chart.Notes)
}

func (s *Session) Clock() time.Duration { return s.clock }

func (s *Session) Score() int64 { return s.score }

func (s *Session) Combo() int { return s.combo }

func (s *Session) MaxCombo() int { return s.maxCombo }

func (s *Session) MissStreak() int { return s.missStreak }

func (s *Session) Misses() int { return s.misses }

func (s *Session) State() State { return s.state }

func (s *Session) Chart() *Chart { return s.chart }

// JudgementCount is how many hits landed inside the i'th judgement
// window of the ladder.
func (s *Session) JudgementCount(i int) int {
	if i < 0 || i >= len(s.counts) {
		return 0
	}
	return s.counts[i]
}

// Stats summarises the signed timing error of every hit so far, in
// milliseconds.
type Stats struct {
	Hits  int
	Mean  float64
	Stdev float64
}

func (s *Session) Stats() Stats {
	var st Stats
	sum := 0.0
	for _, n := range s.chart.Notes {
		if n.Status != Hit {
			continue
		}
		st.Hits++
		sum += float64(n.HitOffset.Milliseconds())
	}
	if st.Hits == 0 {
		return st
	}
	st.Mean = sum / float64(st.Hits)
	if st.Hits < 2 {
		return st
	}
	for _, n := range s.chart.Notes {
		if n.Status != Hit {
			continue
		}
		xi := float64(n.HitOffset.Milliseconds()) - st.Mean
		st.Stdev += xi * xi
	}
	st.Stdev /= float64(st.Hits - 1)
	st.Stdev = math.Sqrt(st.Stdev)
	return st
}
