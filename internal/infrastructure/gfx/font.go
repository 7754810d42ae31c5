package gfx

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// BuiltinFont names the Go Regular font bundled with the binary.
const BuiltinFont = "builtin/goregular.ttf"

type fontKey struct {
	path string
	size float64
}

// FontCache loads font faces lazily and keeps them for its whole lifetime.
// Faces are keyed by font path and point size.
type FontCache struct {
	fsys  fs.FS
	fonts map[string]*opentype.Font
	faces map[fontKey]font.Face
}

// NewFontCache creates a cache reading font files from fsys.
// fsys may be nil when only BuiltinFont is used.
func NewFontCache(fsys fs.FS) *FontCache {
	return &FontCache{
		fsys:  fsys,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[fontKey]font.Face),
	}
}

// Face returns the face for path at size points.
func (c *FontCache) Face(path string, size float64) (font.Face, error) {
	key := fontKey{path: path, size: size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	f, err := c.parse(path)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %s@%v: %w", path, size, err)
	}

	c.faces[key] = face
	return face, nil
}

// Len returns the number of cached faces.
func (c *FontCache) Len() int {
	return len(c.faces)
}

func (c *FontCache) parse(path string) (*opentype.Font, error) {
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}

	var data []byte
	if path == BuiltinFont {
		data = goregular.TTF
	} else {
		if c.fsys == nil {
			return nil, fmt.Errorf("failed to read font %s: no filesystem", path)
		}
		b, err := fs.ReadFile(c.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	c.fonts[path] = f
	return f, nil
}

// RenderText rasterises text with face onto a transparent image sized to fit it.
func RenderText(face font.Face, text string, c color.Color) *image.RGBA {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)
	return img
}

// TextSprite renders text into a new sprite using r.
func TextSprite(r Renderer, face font.Face, text string, c color.Color) (*Sprite, error) {
	img := RenderText(face, text, c)
	tex, err := r.NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("failed to upload text %q: %w", text, err)
	}
	return NewSprite(tex), nil
}
