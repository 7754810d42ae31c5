package gfx

import (
	"github.com/younwookim/shooter/internal/domain/geom"
)

// Sprite is a region of a shared texture.
type Sprite struct {
	tex      *SharedTexture
	src      geom.Rectangle
	released bool
}

// NewSprite wraps tex in a sprite covering the whole texture.
// The sprite takes ownership of tex.
func NewSprite(tex Texture) *Sprite {
	w, h := tex.Size()
	return &Sprite{
		tex: newSharedTexture(tex),
		src: geom.New(0, 0, float64(w), float64(h)),
	}
}

// LoadSprite decodes the image at path. It returns false if the file
// could not be read or decoded.
func LoadSprite(r Renderer, path string) (*Sprite, bool) {
	tex, err := r.LoadTexture(path)
	if err != nil {
		return nil, false
	}
	return NewSprite(tex), true
}

// Region returns a sprite for a sub-region of s. rect is relative to the
// current region. It returns false if rect does not fit inside the current
// region. The new sprite shares the texture with s.
func (s *Sprite) Region(rect geom.Rectangle) (*Sprite, bool) {
	src := geom.New(s.src.X+rect.X, s.src.Y+rect.Y, rect.W, rect.H)
	if !s.src.Contains(src) {
		return nil, false
	}

	return &Sprite{
		tex: s.tex.retain(),
		src: src,
	}, true
}

// Size returns the dimensions of the region.
func (s *Sprite) Size() (w, h float64) {
	return s.src.W, s.src.H
}

// Source returns the region of the texture the sprite draws.
func (s *Sprite) Source() geom.Rectangle {
	return s.src
}

// Texture returns the shared texture handle.
func (s *Sprite) Texture() *SharedTexture {
	return s.tex
}

// Render draws the region scaled into dest.
func (s *Sprite) Render(r Renderer, dest geom.Rectangle) {
	r.Copy(s.tex.Texture(), s.src, dest)
}

// Release drops this sprite's reference to the texture. Releasing twice is a no-op.
func (s *Sprite) Release() {
	if s.released {
		return
	}
	s.released = true
	s.tex.release()
}
