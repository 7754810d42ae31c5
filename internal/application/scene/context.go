package scene

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
	"golang.org/x/image/font"
)

// Context is the per-frame bundle handed to scenes: renderer access, the
// input snapshot and the resource cache. It lives as long as the run loop.
type Context struct {
	renderer gfx.Renderer
	events   *input.Events
	fonts    *gfx.FontCache
	rng      *rand.Rand
}

// NewContext creates a context. fonts and rng may be nil, in which case a
// cache with only the builtin font and a seed-1 generator are used.
func NewContext(r gfx.Renderer, events *input.Events, fonts *gfx.FontCache, rng *rand.Rand) *Context {
	if events == nil {
		events = input.NewEvents()
	}
	if fonts == nil {
		fonts = gfx.NewFontCache(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Context{
		renderer: r,
		events:   events,
		fonts:    fonts,
		rng:      rng,
	}
}

// Renderer returns the renderer.
func (c *Context) Renderer() gfx.Renderer {
	return c.renderer
}

// Events returns the input snapshot of the current frame.
func (c *Context) Events() *input.Events {
	return c.events
}

// Rand returns the context's random number generator.
func (c *Context) Rand() *rand.Rand {
	return c.rng
}

// OutputSize returns the size of the draw target.
func (c *Context) OutputSize() (w, h float64) {
	iw, ih := c.renderer.OutputSize()
	return float64(iw), float64(ih)
}

// Font returns the face for path at size, loading it on first use.
func (c *Context) Font(path string, size float64) (font.Face, bool) {
	face, err := c.fonts.Face(path, size)
	if err != nil {
		return nil, false
	}
	return face, true
}

// TextSprite renders text with the font at path and size.
func (c *Context) TextSprite(path string, size float64, text string, col color.Color) (*gfx.Sprite, bool) {
	face, ok := c.Font(path, size)
	if !ok {
		return nil, false
	}
	s, err := gfx.TextSprite(c.renderer, face, text, col)
	if err != nil {
		return nil, false
	}
	return s, true
}
