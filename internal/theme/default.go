package theme

import (
	"fmt"
	"image/color"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int) string {
	col := laneColor(lane)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", col.R, col.G, col.B, syms[lane%len(syms)])
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) RenderJudgement(index int, name string) string {
	col, ok := judgementColors[index]
	if !ok {
		col = laneColors[-1]
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", col.R, col.G, col.B, name)
}

const (
	barSym = "-"
)

var (
	syms       = [...]string{"⬤", "⬤", "⬤", "⬤"}
	laneColors = map[int]color.RGBA{
		0:  {236, 30, 0, 255},    // red
		1:  {0, 118, 236, 255},   // blue
		2:  {106, 0, 236, 255},   // purple
		3:  {236, 195, 0, 255},   // yellow
		-1: {255, 255, 255, 255}, // other white
	}
	judgementColors = map[int]color.RGBA{
		0:  {173, 236, 236, 255}, // light blue
		1:  {0, 236, 128, 255},   // green
		2:  {236, 128, 0, 255},   // orange
		-1: {236, 30, 0, 255},    // miss red
	}
)

func laneColor(l int) color.RGBA {
	col, ok := laneColors[l]
	if !ok {
		return laneColors[-1]
	}
	return col
}
