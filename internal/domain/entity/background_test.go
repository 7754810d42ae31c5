package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackground_Advance(t *testing.T) {
	b := Background{Vel: 20}

	b.Advance(1, 800)
	assert.Equal(t, 20.0, b.Pos)

	b.Pos = 790
	b.Advance(1, 800)
	assert.Equal(t, 10.0, b.Pos, "wraps around the sprite width")

	b.Pos = 0
	b.Advance(1, 0)
	assert.Equal(t, 20.0, b.Pos, "no wrap without a width")
}

func TestBackground_AdvanceWrap(t *testing.T) {
	tests := []struct {
		name string
		pos  float64
		vel  float64
		dt   float64
		want float64
	}{
		{"exactly one width", 780, 20, 1, 0},
		{"several widths in one step", 0, 20, 100, 400},
		{"negative velocity", 10, -20, 1, 790},
		{"negative velocity over several widths", 0, -20, 100, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Background{Pos: tt.pos, Vel: tt.vel}
			b.Advance(tt.dt, 800)
			assert.Equal(t, tt.want, b.Pos)
			assert.GreaterOrEqual(t, b.Pos, 0.0)
			assert.Less(t, b.Pos, 800.0)
		})
	}
}

func TestBackground_Tiles(t *testing.T) {
	t.Run("scaled to height", func(t *testing.T) {
		b := Background{Pos: 100}
		tiles := b.Tiles(400, 300, 800, 600)

		require.Len(t, tiles, 2)
		assert.Equal(t, -200.0, tiles[0].X)
		assert.Equal(t, 800.0, tiles[0].W)
		assert.Equal(t, 600.0, tiles[0].H)
		assert.Equal(t, 600.0, tiles[1].X)
	})

	t.Run("covers the window", func(t *testing.T) {
		b := Background{Pos: 0}
		tiles := b.Tiles(800, 600, 800, 600)

		require.Len(t, tiles, 1)
		assert.Equal(t, 0.0, tiles[0].X)
		assert.Equal(t, 800.0, tiles[0].Right())
	})

	t.Run("empty sprite", func(t *testing.T) {
		b := Background{}
		assert.Nil(t, b.Tiles(0, 600, 800, 600))
	})
}
