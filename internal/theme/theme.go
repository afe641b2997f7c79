package theme

import (
	"image/color"
)

// Theme defines the colors used to paint the canvas.
type Theme struct {
	Name string

	// Canvas
	Background color.RGBA // Cleared behind all boxes
	BoxFill    color.RGBA // Fill for new boxes
	BoxOutline color.RGBA // 1px border around every box

	// Message overlay
	MessageBackground color.RGBA
	MessageText       color.RGBA
	MessageBorder     color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{255, 255, 255, 255},
		BoxFill:           color.RGBA{0, 0, 255, 255},
		BoxOutline:        color.RGBA{0, 0, 0, 255},
		MessageBackground: color.RGBA{255, 255, 255, 230},
		MessageText:       color.RGBA{0, 0, 0, 255},
		MessageBorder:     color.RGBA{0, 0, 0, 255},
	}
}
