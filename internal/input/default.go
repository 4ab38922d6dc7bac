package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

type Kind int

const (
	LanePress Kind = iota
	PauseToggle
	Restart
	Quit
)

type Event struct {
	Kind Kind
	Lane int
}

type Handler struct {
	lanes []rune
	keys  <-chan keyboard.KeyEvent
}

func Listen(laneKeys []rune) (*Handler, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return &Handler{lanes: laneKeys, keys: keys}, nil
}

func (h *Handler) Close() error {
	return keyboard.Close()
}

// Drain returns the events that occurred since the last call without blocking.
func (h *Handler) Drain() []Event {
	var evs []Event
	for i := 0; i < len(h.keys); i++ {
		key := <-h.keys
		if ev, ok := h.mapKey(key); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

// Wait blocks until any key is pressed.
func (h *Handler) Wait() {
	<-h.keys
}

func (h *Handler) mapKey(key keyboard.KeyEvent) (Event, bool) {
	if nil != key.Err {
		return Event{Kind: Quit}, true
	}
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Kind: Quit}, true
	case keyboard.KeySpace:
		return Event{Kind: PauseToggle}, true
	}
	// Lane keys take priority so bindings like "qwer" still work
	for i, r := range h.lanes {
		if key.Rune == r {
			return Event{Kind: LanePress, Lane: i}, true
		}
	}
	switch key.Rune {
	case 'q':
		return Event{Kind: Quit}, true
	case 'p':
		return Event{Kind: PauseToggle}, true
	case 'r':
		return Event{Kind: Restart}, true
	}
	return Event{}, false
}
