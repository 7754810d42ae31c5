//go:build sdl

// Package sdlhost runs the engine in an SDL2 window. It is only built with
// the sdl build tag since it needs the SDL2 development libraries.
package sdlhost

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // register PNG decoder
	"io/fs"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

// Texture is an SDL texture
type Texture struct {
	tex  *sdl.Texture
	w, h int
}

// Size returns the texture dimensions
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// Dispose destroys the SDL texture
func (t *Texture) Dispose() {
	t.tex.Destroy()
}

// Window owns the SDL window and renderer
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	assets   fs.FS
}

// Open initialises SDL and creates a w×h window
func Open(title string, w, h, scale int, assets fs.FS) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to init SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(w*scale),
		int32(h*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(int32(w), int32(h)); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to set logical size: %w", err)
	}

	return &Window{window: window, renderer: renderer, assets: assets}, nil
}

// Close destroys the window and shuts SDL down
func (win *Window) Close() {
	win.renderer.Destroy()
	win.window.Destroy()
	sdl.Quit()
}

// SetDrawColor sets the colour used by Clear and FillRect
func (win *Window) SetDrawColor(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	win.renderer.SetDrawColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

// Clear fills the back buffer with the draw colour
func (win *Window) Clear() {
	win.renderer.Clear()
}

// Present shows the back buffer
func (win *Window) Present() {
	win.renderer.Present()
}

// FillRect fills rect with the draw colour
func (win *Window) FillRect(rect geom.Rectangle) {
	r := toSDL(rect)
	win.renderer.FillRect(&r)
}

// OutputSize returns the logical size of the window
func (win *Window) OutputSize() (int, int) {
	w, h := win.renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		ow, oh, err := win.renderer.GetOutputSize()
		if err != nil {
			return 0, 0
		}
		return int(ow), int(oh)
	}
	return int(w), int(h)
}

// LoadTexture decodes an image from the asset filesystem and uploads it
func (win *Window) LoadTexture(path string) (gfx.Texture, error) {
	if win.assets == nil {
		return nil, fmt.Errorf("failed to load texture %s: no asset filesystem", path)
	}
	f, err := win.assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return win.NewTexture(img)
}

// NewTexture uploads img as a static texture with alpha blending
func (win *Window) NewTexture(img image.Image) (gfx.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("failed to create texture: empty image %v", b)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	tex, err := win.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STATIC,
		int32(b.Dx()),
		int32(b.Dy()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	if err := tex.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("failed to upload texture: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("failed to set blend mode: %w", err)
	}
	return &Texture{tex: tex, w: b.Dx(), h: b.Dy()}, nil
}

// Copy draws the src region of tex scaled into dst
func (win *Window) Copy(tex gfx.Texture, src, dst geom.Rectangle) {
	t, ok := tex.(*Texture)
	if !ok {
		panic(fmt.Sprintf("sdlhost: foreign texture %T", tex))
	}
	s, d := toSDL(src), toSDL(dst)
	win.renderer.Copy(t.tex, &s, &d)
}

func toSDL(r geom.Rectangle) sdl.Rect {
	n := r.ToNative()
	return sdl.Rect{X: int32(n.Min.X), Y: int32(n.Min.Y), W: int32(n.Dx()), H: int32(n.Dy())}
}
