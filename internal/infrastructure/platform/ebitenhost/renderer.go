// Package ebitenhost runs the engine inside an ebiten window.
package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

// Texture is an ebiten image used as a sprite source
type Texture struct {
	img *ebiten.Image
}

// Size returns the image dimensions
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Dispose frees the GPU memory held by the image
func (t *Texture) Dispose() {
	t.img.Deallocate()
}

// Renderer draws into an offscreen canvas. Present makes the canvas visible
// to the next ebiten Draw call.
type Renderer struct {
	assets    fs.FS
	width     int
	height    int
	back      *ebiten.Image
	front     *ebiten.Image
	drawColor color.Color
}

// NewRenderer creates a w×h renderer. Textures are loaded from assets.
func NewRenderer(w, h int, assets fs.FS) *Renderer {
	return &Renderer{
		assets:    assets,
		width:     w,
		height:    h,
		back:      ebiten.NewImage(w, h),
		front:     ebiten.NewImage(w, h),
		drawColor: color.Black,
	}
}

// SetDrawColor sets the colour used by Clear and FillRect
func (r *Renderer) SetDrawColor(c color.Color) {
	r.drawColor = c
}

// Clear fills the canvas with the draw colour
func (r *Renderer) Clear() {
	r.back.Fill(r.drawColor)
}

// Present swaps the canvas with the visible frame
func (r *Renderer) Present() {
	r.back, r.front = r.front, r.back
}

// FillRect fills rect with the draw colour
func (r *Renderer) FillRect(rect geom.Rectangle) {
	ebitenutil.DrawRect(r.back, rect.X, rect.Y, rect.W, rect.H, r.drawColor)
}

// OutputSize returns the logical screen size
func (r *Renderer) OutputSize() (int, int) {
	return r.width, r.height
}

// LoadTexture decodes an image file from the asset filesystem
func (r *Renderer) LoadTexture(path string) (gfx.Texture, error) {
	if r.assets == nil {
		return nil, fmt.Errorf("failed to load texture %s: no asset filesystem", path)
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(r.assets, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	return &Texture{img: img}, nil
}

// NewTexture uploads img
func (r *Renderer) NewTexture(img image.Image) (gfx.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("failed to create texture: empty image %v", b)
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// Copy draws the src region of tex scaled into dst
func (r *Renderer) Copy(tex gfx.Texture, src, dst geom.Rectangle) {
	t, ok := tex.(*Texture)
	if !ok {
		panic(fmt.Sprintf("ebitenhost: foreign texture %T", tex))
	}
	// ToNative panics on negative sizes.
	srcRect := src.ToNative()
	dst.ToNative()
	if src.W == 0 || src.H == 0 {
		return
	}

	sub := t.img.SubImage(srcRect).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	r.back.DrawImage(sub, op)
}

// Frame returns the last presented frame
func (r *Renderer) Frame() *ebiten.Image {
	return r.front
}
