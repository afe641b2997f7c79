// Package boxes holds the ordered list of squares shown on the canvas.
package boxes

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidSize is returned when a box with a non-positive side is appended.
var ErrInvalidSize = errors.New("box size must be positive")

// DefaultColor is the fill used for newly created boxes.
var DefaultColor = color.RGBA{0, 0, 255, 255}

// Box is a square anchored at its top-left corner.
type Box struct {
	X, Y  int
	Size  int
	Color color.RGBA
}

// Contains reports whether p lies inside the closed square covered by b.
// Points on the right and bottom edges count as inside.
func (b Box) Contains(p image.Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Size && p.Y >= b.Y && p.Y <= b.Y+b.Size
}

// Rect returns the pixel rectangle filled when drawing b.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Size, b.Y+b.Size)
}

// Store is an ordered sequence of boxes. Insertion order is z-order: later
// boxes are drawn on top, earlier boxes win hit-tests.
type Store struct {
	boxes []Box
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds b to the end of the store and returns its index.
func (s *Store) Append(b Box) (int, error) {
	if b.Size <= 0 {
		return -1, ErrInvalidSize
	}
	s.boxes = append(s.boxes, b)
	return len(s.boxes) - 1, nil
}

// Contains reports whether the box at index contains p.
func (s *Store) Contains(index int, p image.Point) bool {
	return s.boxes[index].Contains(p)
}

// Move shifts the box at index by (dx, dy). The index must be valid.
func (s *Store) Move(index, dx, dy int) {
	s.boxes[index].X += dx
	s.boxes[index].Y += dy
}

// HitTest returns the lowest index whose box contains p.
func (s *Store) HitTest(p image.Point) (int, bool) {
	for i := range s.boxes {
		if s.Contains(i, p) {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of boxes.
func (s *Store) Len() int { return len(s.boxes) }

// At returns the box at index.
func (s *Store) At(index int) Box { return s.boxes[index] }

// Boxes returns a copy of the boxes in z-order.
func (s *Store) Boxes() []Box {
	out := make([]Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// SizeFor returns the side length of a new box for a client area of w×h:
// ten percent of the shorter side, never larger than that side and never
// smaller than one pixel.
func SizeFor(w, h int) int {
	short := w
	if h < short {
		short = h
	}
	size := 10 * short / 100
	if short < size {
		size = short
	}
	if size < 1 {
		size = 1
	}
	return size
}
