package software

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/shooter/internal/domain/geom"
	"github.com/younwookim/shooter/internal/infrastructure/gfx"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoCellSheet is a 4x2 image: left half red, right half blue.
func twoCellSheet(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderer_LoadTexture(t *testing.T) {
	r := NewRenderer(16, 16, fstest.MapFS{
		"assets/sheet.png": {Data: twoCellSheet(t)},
		"assets/bad.png":   {Data: []byte("garbage")},
	})

	tex, err := r.LoadTexture("assets/sheet.png")
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)

	_, err = r.LoadTexture("assets/bad.png")
	assert.Error(t, err)
	_, err = r.LoadTexture("assets/missing.png")
	assert.Error(t, err)

	_, ok := gfx.LoadSprite(r, "assets/missing.png")
	assert.False(t, ok)
}

func TestRenderer_CopyScalesRegion(t *testing.T) {
	r := NewRenderer(16, 16, fstest.MapFS{"sheet.png": {Data: twoCellSheet(t)}})
	sheet, ok := gfx.LoadSprite(r, "sheet.png")
	require.True(t, ok)
	blueCell, ok := sheet.Region(geom.New(2, 0, 2, 2))
	require.True(t, ok)

	r.SetDrawColor(color.Black)
	r.Clear()
	blueCell.Render(r, geom.New(4, 4, 8, 8))
	r.Present()

	frame := r.Frame()
	assert.Equal(t, blue, frame.RGBAAt(4, 4))
	assert.Equal(t, blue, frame.RGBAAt(11, 11))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, frame.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, frame.RGBAAt(12, 12))
	assert.Equal(t, 1, r.Presented())
}

func TestRenderer_ClearAndFillRect(t *testing.T) {
	r := NewRenderer(8, 8, nil)
	r.SetDrawColor(red)
	r.Clear()
	r.SetDrawColor(blue)
	r.FillRect(geom.New(2, 2, 2, 2))

	assert.Equal(t, color.RGBA{}, r.Frame().RGBAAt(0, 0), "nothing visible before Present")
	r.Present()

	assert.Equal(t, red, r.Frame().RGBAAt(0, 0))
	assert.Equal(t, blue, r.Frame().RGBAAt(2, 2))
	assert.Equal(t, blue, r.Frame().RGBAAt(3, 3))
	assert.Equal(t, red, r.Frame().RGBAAt(4, 4))

	w, h := r.OutputSize()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestRenderer_TextureDisposedWithLastSprite(t *testing.T) {
	r := NewRenderer(8, 8, nil)
	tex, err := r.NewTexture(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)

	s := gfx.NewSprite(tex)
	sub, ok := s.Region(geom.New(0, 0, 2, 2))
	require.True(t, ok)

	s.Release()
	assert.False(t, tex.(*Texture).Disposed())
	sub.Release()
	assert.True(t, tex.(*Texture).Disposed())
}

func TestRenderer_CopyForeignTexturePanics(t *testing.T) {
	r := NewRenderer(8, 8, nil)
	assert.Panics(t, func() {
		r.Copy(foreign{}, geom.New(0, 0, 1, 1), geom.New(0, 0, 1, 1))
	})
}

type foreign struct{}

func (foreign) Size() (int, int) { return 1, 1 }
func (foreign) Dispose()         {}
