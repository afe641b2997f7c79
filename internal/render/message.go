package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/dragbox/internal/theme"
)

const messagePadding = 8

// DrawMessage paints msg centred in dst on a bordered panel.
func DrawMessage(dst *image.RGBA, msg string, t *theme.Theme) {
	if msg == "" {
		return
	}
	if t == nil {
		t = theme.Default()
	}
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.MessageText), Face: face}
	width := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()

	b := dst.Bounds()
	px := b.Min.X + (b.Dx()-width)/2
	py := b.Min.Y + (b.Dy()-ascent-descent)/2 + ascent
	panel := image.Rect(px-messagePadding, py-ascent-messagePadding, px+width+messagePadding, py+descent+messagePadding)
	draw.Draw(dst, panel, &image.Uniform{t.MessageBackground}, image.Point{}, draw.Over)
	drawRect(dst, panel, t.MessageBorder, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
