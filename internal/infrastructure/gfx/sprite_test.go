package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/shooter/internal/domain/geom"
)

func TestLoadSprite(t *testing.T) {
	r := newFakeRenderer()
	r.textures["assets/ship.png"] = &fakeTexture{w: 129, h: 117}

	s, ok := LoadSprite(r, "assets/ship.png")
	require.True(t, ok)
	w, h := s.Size()
	assert.Equal(t, 129.0, w)
	assert.Equal(t, 117.0, h)
	assert.Equal(t, geom.New(0, 0, 129, 117), s.Source())

	missing, ok := LoadSprite(r, "assets/missing.png")
	assert.False(t, ok)
	assert.Nil(t, missing)
}

func TestSprite_Region(t *testing.T) {
	sheet := NewSprite(&fakeTexture{w: 192, h: 96})
	cell, ok := sheet.Region(geom.New(96, 0, 96, 96))
	require.True(t, ok)
	assert.Equal(t, geom.New(96, 0, 96, 96), cell.Source())

	tests := []struct {
		name   string
		rect   geom.Rectangle
		want   geom.Rectangle
		wantOK bool
	}{
		{"full region", geom.New(0, 0, 96, 96), geom.New(96, 0, 96, 96), true},
		{"relative to region origin", geom.New(10, 20, 30, 40), geom.New(106, 20, 30, 40), true},
		{"one pixel too wide", geom.New(0, 0, 97, 96), geom.Rectangle{}, false},
		{"negative offset", geom.New(-1, 0, 10, 10), geom.Rectangle{}, false},
		{"past bottom", geom.New(0, 90, 10, 10), geom.Rectangle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := sheet.Texture().Refs()
			sub, ok := cell.Region(tt.rect)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, sub)
				assert.Equal(t, refs, sheet.Texture().Refs(), "failed region must not retain")
				assert.Equal(t, geom.New(96, 0, 96, 96), cell.Source(), "failed region must not mutate")
				return
			}
			assert.Equal(t, tt.want, sub.Source())
			assert.Same(t, cell.Texture(), sub.Texture())
			sub.Release()
		})
	}
}

func TestSprite_SizeIsStable(t *testing.T) {
	s := NewSprite(&fakeTexture{w: 43, h: 39})
	w1, h1 := s.Size()
	w2, h2 := s.Size()
	assert.Equal(t, w1, w2)
	assert.Equal(t, h1, h2)
}

func TestSprite_Render(t *testing.T) {
	r := newFakeRenderer()
	tex := &fakeTexture{w: 129, h: 117}
	sheet := NewSprite(tex)
	ship, ok := sheet.Region(geom.New(43, 39, 43, 39))
	require.True(t, ok)

	dest := geom.New(64, 64, 43, 39)
	CopySprite(r, ship, dest)

	require.Len(t, r.copies, 1)
	assert.Same(t, tex, r.copies[0].tex)
	assert.Equal(t, geom.New(43, 39, 43, 39), r.copies[0].src)
	assert.Equal(t, dest, r.copies[0].dst)
	assert.Equal(t, geom.New(43, 39, 43, 39), ship.Source(), "render must not mutate the sprite")
}

func TestSprite_SharedTextureLifetime(t *testing.T) {
	tex := &fakeTexture{w: 64, h: 64}
	sheet := NewSprite(tex)
	a, ok := sheet.Region(geom.New(0, 0, 32, 32))
	require.True(t, ok)
	b, ok := a.Region(geom.New(0, 0, 16, 16))
	require.True(t, ok)
	assert.Equal(t, 3, sheet.Texture().Refs())

	sheet.Release()
	a.Release()
	a.Release()
	assert.Equal(t, 0, tex.disposed, "texture must outlive the last sprite")
	assert.True(t, b.Texture().Alive())

	b.Release()
	assert.Equal(t, 1, tex.disposed)
	assert.False(t, b.Texture().Alive())

	assert.Panics(t, func() { b.Region(geom.New(0, 0, 1, 1)) })
}
