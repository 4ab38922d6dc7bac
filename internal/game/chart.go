package game

import (
	"time"
)

// Chart is one run's note sequence, ordered by spawn time and never
// reordered, plus the generation inputs that identify it.
type Chart struct {
	Notes      []*Note
	Tempo      float64
	Difficulty Difficulty
	Seed       int64
	Beats      int
}

// Duration is the spawn time of the final note.
func (c *Chart) Duration() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}
