package render

import (
	"fmt"
	"image"

	"golang.org/x/exp/shiny/screen"
)

// BufferMaker allocates off-screen buffers. screen.Screen satisfies it.
type BufferMaker interface {
	NewBuffer(size image.Point) (screen.Buffer, error)
}

// Uploader presents a buffer. screen.Window satisfies it.
type Uploader interface {
	Upload(dp image.Point, src screen.Buffer, sr image.Rectangle)
	Publish() screen.PublishResult
}

// Canvas owns the off-screen buffer sized to the window's client area.
// The buffer is replaced on every resize and released on Release.
type Canvas struct {
	maker BufferMaker
	buf   screen.Buffer
}

// NewCanvas returns a Canvas without a buffer; call Resize before painting.
func NewCanvas(maker BufferMaker) *Canvas {
	return &Canvas{maker: maker}
}

// Resize releases the current buffer and allocates one of the given size.
// A zero or negative size leaves the canvas without a buffer.
func (c *Canvas) Resize(size image.Point) error {
	c.Release()
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	b, err := c.maker.NewBuffer(size)
	if err != nil {
		return fmt.Errorf("new buffer %dx%d: %w", size.X, size.Y, err)
	}
	c.buf = b
	return nil
}

// Size returns the buffer size, or the zero point when there is none.
func (c *Canvas) Size() image.Point {
	if c.buf == nil {
		return image.Point{}
	}
	return c.buf.Size()
}

// Ready reports whether a buffer is allocated.
func (c *Canvas) Ready() bool { return c.buf != nil }

// Paint redraws the whole buffer with fn and presents it through w.
// It reports false when there is no buffer to paint into.
func (c *Canvas) Paint(w Uploader, fn func(dst *image.RGBA)) bool {
	if c.buf == nil {
		return false
	}
	fn(c.buf.RGBA())
	w.Upload(image.Point{}, c.buf, c.buf.Bounds())
	w.Publish()
	return true
}

// Release frees the buffer. It is safe to call more than once.
func (c *Canvas) Release() {
	if c.buf != nil {
		c.buf.Release()
		c.buf = nil
	}
}
