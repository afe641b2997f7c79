// Package input maps pointer events onto the box store.
package input

import (
	"image"
	"image/color"

	"golang.org/x/mobile/event/mouse"

	"github.com/example/dragbox/internal/boxes"
)

// State is the drag state of the handler.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Default client size used until the first size event arrives.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Handler owns the selection state and applies pointer events to a store.
type Handler struct {
	store    *boxes.Store
	color    color.RGBA
	viewport image.Point

	state      State
	selected   int
	buttonHeld bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithColor sets the fill used for newly created boxes.
func WithColor(c color.RGBA) Option { return func(h *Handler) { h.color = c } }

// WithViewport sets the initial client size.
func WithViewport(w, h int) Option {
	return func(hd *Handler) { hd.viewport = image.Pt(w, h) }
}

// New returns a Handler in the Idle state operating on store.
func New(store *boxes.Store, opts ...Option) *Handler {
	h := &Handler{
		store:    store,
		color:    boxes.DefaultColor,
		viewport: image.Pt(DefaultWidth, DefaultHeight),
		selected: -1,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// SetViewport records the current client size used to size new boxes.
func (h *Handler) SetViewport(w, hgt int) { h.viewport = image.Pt(w, hgt) }

// State returns the current drag state.
func (h *Handler) State() State { return h.state }

// Selected returns the index of the box being dragged, or -1.
func (h *Handler) Selected() int { return h.selected }

// Handle applies e and reports whether the canvas needs repainting.
func (h *Handler) Handle(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		return h.press(p)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		h.release()
		return false
	case e.Direction == mouse.DirNone:
		return h.move(p)
	}
	return false
}

func (h *Handler) press(p image.Point) bool {
	h.buttonHeld = true
	if idx, ok := h.store.HitTest(p); ok {
		h.state = Dragging
		h.selected = idx
		return true
	}
	size := boxes.SizeFor(h.viewport.X, h.viewport.Y)
	// SizeFor never returns less than 1 so Append cannot fail here.
	_, _ = h.store.Append(boxes.Box{X: p.X, Y: p.Y, Size: size, Color: h.color})
	return true
}

// move snaps the dragged box so its top-left corner follows the pointer.
func (h *Handler) move(p image.Point) bool {
	if !h.buttonHeld || h.state != Dragging {
		return false
	}
	b := h.store.At(h.selected)
	h.store.Move(h.selected, p.X-b.X, p.Y-b.Y)
	return true
}

func (h *Handler) release() {
	h.buttonHeld = false
	h.state = Idle
	h.selected = -1
}
