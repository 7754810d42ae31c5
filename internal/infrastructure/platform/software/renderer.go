// Package software implements a headless renderer drawing into an
// in-memory RGBA image. It backs headless runs, replays and tests.
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // register PNG decoder
	"io/fs"

	xdraw "golang.org/x/image/draw"

	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

// Texture is an RGBA image owned by the software renderer.
type Texture struct {
	img      *image.RGBA
	disposed bool
}

// Size implements gfx.Texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Dispose implements gfx.Texture.
func (t *Texture) Dispose() {
	t.disposed = true
	t.img = image.NewRGBA(image.Rect(0, 0, 0, 0))
}

// Disposed reports whether Dispose was called.
func (t *Texture) Disposed() bool {
	return t.disposed
}

// Image returns the texture pixels.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

// Renderer draws into a back buffer; Present copies it to the front buffer.
type Renderer struct {
	assets    fs.FS
	back      *image.RGBA
	front     *image.RGBA
	drawColor color.Color
	presented int
}

// NewRenderer creates a renderer with a w×h target. Textures are loaded
// from assets.
func NewRenderer(w, h int, assets fs.FS) *Renderer {
	return &Renderer{
		assets:    assets,
		back:      image.NewRGBA(image.Rect(0, 0, w, h)),
		front:     image.NewRGBA(image.Rect(0, 0, w, h)),
		drawColor: color.Black,
	}
}

// SetDrawColor implements gfx.Renderer.
func (r *Renderer) SetDrawColor(c color.Color) {
	r.drawColor = c
}

// Clear implements gfx.Renderer.
func (r *Renderer) Clear() {
	draw.Draw(r.back, r.back.Bounds(), image.NewUniform(r.drawColor), image.Point{}, draw.Src)
}

// Present implements gfx.Renderer.
func (r *Renderer) Present() {
	copy(r.front.Pix, r.back.Pix)
	r.presented++
}

// FillRect implements gfx.Renderer.
func (r *Renderer) FillRect(rect geom.Rectangle) {
	draw.Draw(r.back, rect.ToNative(), image.NewUniform(r.drawColor), image.Point{}, draw.Over)
}

// OutputSize implements gfx.Renderer.
func (r *Renderer) OutputSize() (int, int) {
	b := r.back.Bounds()
	return b.Dx(), b.Dy()
}

// LoadTexture implements gfx.Renderer.
func (r *Renderer) LoadTexture(path string) (gfx.Texture, error) {
	if r.assets == nil {
		return nil, fmt.Errorf("failed to open %s: no asset filesystem", path)
	}
	f, err := r.assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return r.NewTexture(img)
}

// NewTexture implements gfx.Renderer.
func (r *Renderer) NewTexture(img image.Image) (gfx.Texture, error) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{img: rgba}, nil
}

// Copy implements gfx.Renderer. Scaling uses nearest-neighbour sampling.
func (r *Renderer) Copy(tex gfx.Texture, src, dst geom.Rectangle) {
	t, ok := tex.(*Texture)
	if !ok {
		panic(fmt.Sprintf("software: foreign texture %T", tex))
	}
	xdraw.NearestNeighbor.Scale(r.back, dst.ToNative(), t.img, src.ToNative(), xdraw.Over, nil)
}

// Frame returns the last presented frame.
func (r *Renderer) Frame() *image.RGBA {
	return r.front
}

// Presented returns how many frames were presented.
func (r *Renderer) Presented() int {
	return r.presented
}
