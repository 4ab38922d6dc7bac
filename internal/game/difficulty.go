package game

import "fmt"

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// ExtraNoteChance is the probability of a beat carrying a second note.
func (d Difficulty) ExtraNoteChance() float64 {
	switch d {
	case Normal:
		return 0.5
	case Hard:
		return 0.7
	}
	return 0
}

func (d Difficulty) String() string {
	switch d {
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return "easy"
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}
