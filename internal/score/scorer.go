package score

import (
	"log"
	"time"

	"github.com/tideray/beatfall/internal/game"
)

type Store interface {
	Init() error
	Deinit()

	// Save the outcome of a finished run
	Save(r *Result) error

	// Best returns the highest scoring result for a chart sum, or nil
	// when the chart has never been played
	Best(sum string) (*Result, error)

	// History returns every stored result for a chart sum, oldest
	// first
	History(sum string) ([]Result, error)
}

type Result struct {
	Sum        string
	Tempo      float64
	Difficulty game.Difficulty
	Seed       int64
	Score      int64
	MaxCombo   int
	Perfects   int
	Goods      int
	Misses     int
	PlayedAt   time.Time
}

// BestFor is the stored best for a chart, nil when it has never been
// played or the lookup fails.
func BestFor(s Store, c *game.Chart) *Result {
	best, err := s.Best(Sum(c))
	if nil != err {
		log.Println("unable to read best result:", err)
		return nil
	}
	return best
}
