// Package render paints the box list into an off-screen buffer.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/dragbox/internal/boxes"
	"github.com/example/dragbox/internal/theme"
)

// Render clears dst to the theme background and draws every box in order,
// so later boxes cover earlier ones where they overlap.
func Render(dst *image.RGBA, list []boxes.Box, t *theme.Theme) {
	if t == nil {
		t = theme.Default()
	}
	draw.Draw(dst, dst.Bounds(), &image.Uniform{t.Background}, image.Point{}, draw.Src)
	for _, b := range list {
		drawBox(dst, b, t.BoxOutline)
	}
}

// drawBox fills the square and strokes a 1px border just inside its edges.
func drawBox(dst *image.RGBA, b boxes.Box, outline color.RGBA) {
	r := b.Rect()
	draw.Draw(dst, r, &image.Uniform{b.Color}, image.Point{}, draw.Src)
	drawRect(dst, r, outline, 1)
}

func drawRect(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	src := &image.Uniform{col}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
		image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
		image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}
