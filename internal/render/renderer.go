package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(row, col int, content string, frames int)
	RenderLoop(period time.Duration, frame func(delta time.Duration) bool)
	Fill(row, col int, message string)
	FillColor(row, col int, color color.RGBA, message string)
}
