// Package gfx provides the sprite resource model over shared textures,
// and the renderer capability set every platform backend implements.
package gfx

import (
	"image"
	"image/color"

	"github.com/younwookim/shooter/internal/domain/geom"
)

// Texture is a decoded image that lives on the renderer side.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)

	// Dispose releases the native resources held by the texture.
	Dispose()
}

// Renderer is the drawing capability set the engine needs from a platform.
type Renderer interface {
	SetDrawColor(c color.Color)
	Clear()
	Present()
	FillRect(r geom.Rectangle)

	// OutputSize returns the size of the draw target in pixels.
	OutputSize() (w, h int)

	// LoadTexture decodes the image at path into a texture.
	LoadTexture(path string) (Texture, error)

	// NewTexture uploads an in-memory image as a texture.
	NewTexture(img image.Image) (Texture, error)

	// Copy draws the src region of tex scaled into dst.
	Copy(tex Texture, src, dst geom.Rectangle)
}

// Renderable is anything that can draw itself into a destination rectangle.
type Renderable interface {
	Render(r Renderer, dest geom.Rectangle)
}

// CopySprite draws s into dest.
func CopySprite(r Renderer, s Renderable, dest geom.Rectangle) {
	s.Render(r, dest)
}
