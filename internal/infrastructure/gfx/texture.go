package gfx

// SharedTexture is a texture shared by several sprites. The texture is
// disposed once the last sprite referencing it is released.
//
// Reference counting only manages lifetime. It is not safe for concurrent use.
type SharedTexture struct {
	tex  Texture
	refs int
}

func newSharedTexture(tex Texture) *SharedTexture {
	return &SharedTexture{tex: tex, refs: 1}
}

// Texture returns the underlying texture.
func (s *SharedTexture) Texture() Texture {
	return s.tex
}

// Refs returns the number of live references.
func (s *SharedTexture) Refs() int {
	return s.refs
}

// Alive reports whether the texture has not been disposed yet.
func (s *SharedTexture) Alive() bool {
	return s.refs > 0
}

func (s *SharedTexture) retain() *SharedTexture {
	if s.refs <= 0 {
		panic("gfx: retain of a disposed texture")
	}
	s.refs++
	return s
}

func (s *SharedTexture) release() {
	if s.refs <= 0 {
		return
	}
	s.refs--
	if s.refs == 0 {
		s.tex.Dispose()
	}
}
