package game

import (
	"time"
)

// Config holds every tunable the engine judges against. Positions are
// unitless: a note gains Speed/FrameUnit position per millisecond.
type Config struct {
	Lanes         int
	Speed         float64
	FrameUnit     float64
	HitLine       float64
	MissLine      float64
	VisibleMin    float64
	VisibleMax    float64
	FailThreshold int         // Consecutive misses that end the run
	Judgements    []Judgement // Ordered narrowest first; the widest window is the press tolerance
}

func DefaultConfig() Config {
	return Config{
		Lanes:         4,
		Speed:         2,
		FrameUnit:     16,
		HitLine:       550,
		MissLine:      650,
		VisibleMin:    -50,
		VisibleMax:    700,
		FailThreshold: 10,
		Judgements: []Judgement{
			{Window: 30, Points: 300, Name: "Perfect"},
			{Window: 100, Points: 100, Name: "Good"},
		},
	}
}

// TravelTime is how long a note falls before it crosses the hit line.
func (c *Config) TravelTime() time.Duration {
	return time.Duration(c.HitLine * c.FrameUnit / c.Speed * float64(time.Millisecond))
}
