package generator

import (
	"math/rand"
	"time"

	"github.com/tideray/beatfall/internal/game"
)

// Generator lays out charts from tempo and difficulty. The random
// source is explicit so a fixed seed reproduces the exact chart.
type Generator struct {
	seed int64
	rnd  *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{seed: seed, rnd: rand.New(rand.NewSource(seed))}
}

// Generate places one note per beat, plus a difficulty-weighted chance
// of a second spread evenly inside the beat. Notes come out ordered by
// spawn time with sequential IDs.
func (g *Generator) Generate(tempo float64, difficulty game.Difficulty, beats, lanes int) *game.Chart {
	if tempo <= 0 {
		tempo = 1
	}
	if lanes < 1 {
		lanes = 1
	}
	interval := Interval(tempo)

	notes := make([]*game.Note, 0, beats)
	for b := 0; b < beats; b++ {
		k := 1
		if g.rnd.Float64() < difficulty.ExtraNoteChance() {
			k = 2
		}
		for i := 0; i < k; i++ {
			notes = append(notes, &game.Note{
				ID:   len(notes),
				Lane: g.rnd.Intn(lanes),
				Time: time.Duration(b)*interval + time.Duration(i)*interval/time.Duration(k),
			})
		}
	}

	return &game.Chart{
		Notes:      notes,
		Tempo:      tempo,
		Difficulty: difficulty,
		Seed:       g.seed,
		Beats:      beats,
	}
}

// Interval is the time between beats at the given tempo.
func Interval(tempo float64) time.Duration {
	if tempo <= 0 {
		tempo = 1
	}
	return time.Duration(60000.0 / tempo * float64(time.Millisecond))
}
