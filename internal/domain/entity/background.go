package entity

import (
	"math"

	"github.com/younwookim/shooter/internal/domain/geom"
)

// Background is a horizontally scrolling, wrapping layer
type Background struct {
	Pos float64 // Scroll offset in sprite pixels
	Vel float64 // Sprite pixels per second
}

// Advance scrolls the layer by dt seconds. spriteW is the width of the
// layer image; the offset is kept in [0, spriteW).
func (b *Background) Advance(dt, spriteW float64) {
	b.Pos += b.Vel * dt
	if spriteW <= 0 {
		return
	}
	b.Pos = math.Mod(b.Pos, spriteW)
	if b.Pos < 0 {
		b.Pos += spriteW
	}
}

// Tiles returns the destination rectangles covering a winW×winH screen. The
// sprite is scaled to the screen height and repeated horizontally.
func (b *Background) Tiles(spriteW, spriteH, winW, winH float64) []geom.Rectangle {
	if spriteW <= 0 || spriteH <= 0 {
		return nil
	}
	scale := winH / spriteH
	tileW := spriteW * scale

	var tiles []geom.Rectangle
	for left := -b.Pos * scale; left < winW; left += tileW {
		tiles = append(tiles, geom.New(left, 0, tileW, winH))
	}
	return tiles
}
