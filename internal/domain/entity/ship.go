// Package entity holds the game objects of the ship screen and their
// movement rules. It has no rendering dependencies.
package entity

import (
	"math"

	"github.com/younwookim/shooter/internal/domain/geom"
)

// ShipFrame is a cell of the ship spritesheet. Cells are ordered left to
// right, top to bottom.
type ShipFrame int

const (
	ShipUpNorm ShipFrame = iota
	ShipUpFast
	ShipUpSlow
	ShipMidNorm
	ShipMidFast
	ShipMidSlow
	ShipDownNorm
	ShipDownFast
	ShipDownSlow

	ShipFrameCount = 9
)

// String returns the string representation of the frame
func (f ShipFrame) String() string {
	switch f {
	case ShipUpNorm:
		return "UpNorm"
	case ShipUpFast:
		return "UpFast"
	case ShipUpSlow:
		return "UpSlow"
	case ShipMidNorm:
		return "MidNorm"
	case ShipMidFast:
		return "MidFast"
	case ShipMidSlow:
		return "MidSlow"
	case ShipDownNorm:
		return "DownNorm"
	case ShipDownFast:
		return "DownFast"
	case ShipDownSlow:
		return "DownSlow"
	default:
		return "Unknown"
	}
}

// ShipInput is the directional input for one frame
type ShipInput struct {
	Left, Right, Up, Down bool
}

// Ship is the player's ship
type Ship struct {
	Rect    geom.Rectangle
	Current ShipFrame
	Speed   float64 // Pixels per second
}

// NewShip creates a ship at (x, y)
func NewShip(x, y, w, h, speed float64) *Ship {
	return &Ship{
		Rect:    geom.New(x, y, w, h),
		Current: ShipMidNorm,
		Speed:   speed,
	}
}

// Displacement returns how far the ship moves for the input over elapsed
// seconds. Diagonal movement is normalised so it is not faster.
func (s *Ship) Displacement(in ShipInput, elapsed float64) (dx, dy float64) {
	horizontal := in.Left != in.Right
	vertical := in.Up != in.Down

	moved := s.Speed * elapsed
	if horizontal && vertical {
		moved /= math.Sqrt2
	}

	switch {
	case in.Left && !in.Right:
		dx = -moved
	case in.Right && !in.Left:
		dx = moved
	}
	switch {
	case in.Up && !in.Down:
		dy = -moved
	case in.Down && !in.Up:
		dy = moved
	}
	return dx, dy
}

// FrameFor picks the sheet cell for a displacement
func FrameFor(dx, dy float64) ShipFrame {
	row := ShipMidNorm
	switch {
	case dy < 0:
		row = ShipUpNorm
	case dy > 0:
		row = ShipDownNorm
	}

	switch {
	case dx < 0:
		return row + 2 // Slow
	case dx > 0:
		return row + 1 // Fast
	default:
		return row
	}
}

// Move applies the input and confines the ship to bounds.
// It returns false if the ship does not fit inside bounds.
func (s *Ship) Move(in ShipInput, elapsed float64, bounds geom.Rectangle) bool {
	dx, dy := s.Displacement(in, elapsed)
	s.Current = FrameFor(dx, dy)

	moved, ok := s.Rect.Translate(dx, dy).MoveInside(bounds)
	if !ok {
		return false
	}
	s.Rect = moved
	return true
}
