package gfx

import (
	"errors"
	"image"
	"image/color"

	"github.com/younwookim/shooter/internal/domain/geom"
)

type fakeTexture struct {
	w, h     int
	disposed int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Dispose()         { t.disposed++ }

type copyCall struct {
	tex      Texture
	src, dst geom.Rectangle
}

// fakeRenderer records draw calls instead of drawing.
type fakeRenderer struct {
	textures map[string]*fakeTexture
	copies   []copyCall
	uploads  []image.Image
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{textures: map[string]*fakeTexture{}}
}

func (r *fakeRenderer) SetDrawColor(color.Color)  {}
func (r *fakeRenderer) Clear()                    {}
func (r *fakeRenderer) Present()                  {}
func (r *fakeRenderer) FillRect(geom.Rectangle)   {}
func (r *fakeRenderer) OutputSize() (int, int)    { return 800, 600 }

func (r *fakeRenderer) LoadTexture(path string) (Texture, error) {
	tex, ok := r.textures[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return tex, nil
}

func (r *fakeRenderer) NewTexture(img image.Image) (Texture, error) {
	r.uploads = append(r.uploads, img)
	b := img.Bounds()
	return &fakeTexture{w: b.Dx(), h: b.Dy()}, nil
}

func (r *fakeRenderer) Copy(tex Texture, src, dst geom.Rectangle) {
	r.copies = append(r.copies, copyCall{tex: tex, src: src, dst: dst})
}
