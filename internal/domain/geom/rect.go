// Package geom provides the axis-aligned rectangle used for layout,
// containment and collision queries.
package geom

import (
	"fmt"
	"image"
)

// Rectangle is an axis-aligned rectangle in floating-point screen units.
// It is a value type: every transformation returns a new Rectangle.
type Rectangle struct {
	X, Y float64
	W, H float64
}

// New creates a rectangle from its top-left corner and size.
func New(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.H
}

// Size returns the width and height.
func (r Rectangle) Size() (w, h float64) {
	return r.W, r.H
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return Rectangle{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains reports whether every corner of other lies within r.
// Edges are inclusive.
func (r Rectangle) Contains(other Rectangle) bool {
	xmin, xmax := other.X, other.Right()
	ymin, ymax := other.Y, other.Bottom()

	return xmin >= r.X && xmin <= r.Right() &&
		xmax >= r.X && xmax <= r.Right() &&
		ymin >= r.Y && ymin <= r.Bottom() &&
		ymax >= r.Y && ymax <= r.Bottom()
}

// Overlaps reports whether r and other intersect.
// Rectangles that only share an edge do not overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// MoveInside returns r repositioned so that it lies fully within parent,
// keeping its size. It returns false if r is wider or taller than parent.
func (r Rectangle) MoveInside(parent Rectangle) (Rectangle, bool) {
	if r.W > parent.W || r.H > parent.H {
		return Rectangle{}, false
	}

	moved := r
	switch {
	case r.X < parent.X:
		moved.X = parent.X
	case r.Right() > parent.Right():
		moved.X = parent.Right() - r.W
	}
	switch {
	case r.Y < parent.Y:
		moved.Y = parent.Y
	case r.Bottom() > parent.Bottom():
		moved.Y = parent.Bottom() - r.H
	}

	return moved, true
}

// ToNative converts r to an image.Rectangle for drawing.
// It panics if r has a negative width or height.
func (r Rectangle) ToNative() image.Rectangle {
	if r.W < 0 || r.H < 0 {
		panic(fmt.Sprintf("geom: negative rectangle size %vx%v", r.W, r.H))
	}

	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.W), y+int(r.H))
}

// String implements fmt.Stringer.
func (r Rectangle) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.W, r.H)
}
