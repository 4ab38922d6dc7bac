package input

import (
	"errors"
	"testing"

	"github.com/eiannone/keyboard"
)

var keyTests = map[keyboard.KeyEvent]Event{
	{Rune: 'd'}:              {Kind: LanePress, Lane: 0},
	{Rune: 'f'}:              {Kind: LanePress, Lane: 1},
	{Rune: 'j'}:              {Kind: LanePress, Lane: 2},
	{Rune: 'k'}:              {Kind: LanePress, Lane: 3},
	{Rune: 'p'}:              {Kind: PauseToggle},
	{Rune: 'r'}:              {Kind: Restart},
	{Rune: 'q'}:              {Kind: Quit},
	{Key: keyboard.KeyEsc}:   {Kind: Quit},
	{Key: keyboard.KeyCtrlC}: {Kind: Quit},
	{Key: keyboard.KeySpace}: {Kind: PauseToggle},
}

func TestMapKey(t *testing.T) {
	h := &Handler{lanes: []rune("dfjk")}
	for key, want := range keyTests {
		ev, ok := h.mapKey(key)
		if !ok || ev != want {
			t.Log(key, "mapped to", ev, ok, "want", want)
			t.Fail()
		}
	}
}

func TestMapKeyUnbound(t *testing.T) {
	h := &Handler{lanes: []rune("dfjk")}
	if ev, ok := h.mapKey(keyboard.KeyEvent{Rune: 'x'}); ok {
		t.Log("x should not map, got", ev)
		t.Fail()
	}
}

func TestMapKeyLanePriority(t *testing.T) {
	h := &Handler{lanes: []rune("qwer")}
	ev, ok := h.mapKey(keyboard.KeyEvent{Rune: 'q'})
	if !ok || ev.Kind != LanePress || ev.Lane != 0 {
		t.Log("q with qwer lanes mapped to", ev)
		t.Fail()
	}
}

func TestMapKeyError(t *testing.T) {
	h := &Handler{lanes: []rune("dfjk")}
	ev, ok := h.mapKey(keyboard.KeyEvent{Err: errors.New("read failed")})
	if !ok || ev.Kind != Quit {
		t.Log("error event mapped to", ev)
		t.Fail()
	}
}
