package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/dragbox/internal/boxes"
	"github.com/example/dragbox/internal/theme"
)

func TestRenderClearsAndDrawsInOrder(t *testing.T) {
	th := theme.Default()
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	red := color.RGBA{255, 0, 0, 255}
	list := []boxes.Box{
		{X: 10, Y: 10, Size: 40, Color: boxes.DefaultColor},
		{X: 30, Y: 30, Size: 40, Color: red},
	}
	Render(dst, list, th)

	if got := dst.RGBAAt(5, 5); got != th.Background {
		t.Errorf("background pixel = %+v, want %+v", got, th.Background)
	}
	if got := dst.RGBAAt(20, 20); got != boxes.DefaultColor {
		t.Errorf("first box interior = %+v", got)
	}
	if got := dst.RGBAAt(40, 40); got != red {
		t.Errorf("overlap pixel = %+v, want later box on top", got)
	}
	if got := dst.RGBAAt(10, 20); got != th.BoxOutline {
		t.Errorf("left edge = %+v, want outline", got)
	}
	if got := dst.RGBAAt(69, 50); got != th.BoxOutline {
		t.Errorf("right edge = %+v, want outline", got)
	}
	if got := dst.RGBAAt(70, 50); got != th.Background {
		t.Errorf("pixel past right edge = %+v, want background", got)
	}
}

func TestRenderRepaintsEverything(t *testing.T) {
	th := theme.Default()
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	Render(dst, []boxes.Box{{X: 0, Y: 0, Size: 20, Color: boxes.DefaultColor}}, th)
	Render(dst, []boxes.Box{{X: 25, Y: 25, Size: 20, Color: boxes.DefaultColor}}, th)
	if got := dst.RGBAAt(10, 10); got != th.Background {
		t.Fatalf("stale pixel from previous frame: %+v", got)
	}
}

func TestRenderClipsBoxesOutsideBuffer(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 30, 30))
	Render(dst, []boxes.Box{{X: 20, Y: 20, Size: 60, Color: boxes.DefaultColor}}, nil)
	if got := dst.RGBAAt(25, 25); got != boxes.DefaultColor {
		t.Fatalf("visible part of clipped box = %+v", got)
	}
}

func TestDrawMessageMarksCentre(t *testing.T) {
	th := theme.Default()
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	Render(dst, nil, th)
	DrawMessage(dst, "Saved", th)
	found := false
	for x := 70; x < 130 && !found; x++ {
		for y := 40; y < 60; y++ {
			if dst.RGBAAt(x, y) == th.MessageText {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("expected message text near the centre")
	}
	if got := dst.RGBAAt(0, 0); got != th.Background {
		t.Fatalf("corner touched by message: %+v", got)
	}
}
