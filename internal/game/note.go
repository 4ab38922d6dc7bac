package game

import (
	"time"
)

type Status int

const (
	Pending Status = iota
	Hit
	Missed
)

func (s Status) String() string {
	switch s {
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "pending"
}

type Note struct {
	ID   int
	Lane int           // The lane this note falls down
	Time time.Duration // Offset from session start at which the note enters the field

	// This is state
	Status    Status
	HitOffset time.Duration // Signed error against the hit line, recorded on hit
}
